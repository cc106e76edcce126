package tcp

import (
	"io"
	"net"

	"github.com/lusion/netserve/interface/tcp"
)

// size of the intermediate buffer used by Copy
const copyBufferSize = 32 * 1024

// NetStream wraps one accepted connection as a splittable bidirectional stream
type NetStream struct {
	conn net.Conn
}

// NewNetStream creates a stream over an accepted connection
func NewNetStream(conn net.Conn) *NetStream {
	return &NetStream{conn: conn}
}

// Split returns independent read and write views over the same connection.
// Each half can be driven from its own goroutine
func (s *NetStream) Split() (tcp.ReadHalf, tcp.WriteHalf) {
	return &readHalf{conn: s.conn}, &writeHalf{conn: s.conn}
}

// RemoteAddr returns the peer address of the underlying connection
func (s *NetStream) RemoteAddr() net.Addr {
	return s.conn.RemoteAddr()
}

// Close closes the underlying connection, both directions
func (s *NetStream) Close() error {
	return s.conn.Close()
}

type readHalf struct {
	conn net.Conn
}

func (r *readHalf) Read(p []byte) (int, error) {
	return r.conn.Read(p)
}

type writeHalf struct {
	conn net.Conn
}

func (w *writeHalf) Write(p []byte) (int, error) {
	return w.conn.Write(p)
}

// Flush is a no-op: writes go straight to the socket
func (w *writeHalf) Flush() error {
	return nil
}

// Close shuts down the write direction only, so the peer reads EOF while the
// read half stays usable
func (w *writeHalf) Close() error {
	if cw, ok := w.conn.(interface{ CloseWrite() error }); ok {
		return cw.CloseWrite()
	}
	return w.conn.Close()
}

// Copy relays src into dst through a fixed-size buffer until end-of-stream or
// the first error from either side
func Copy(dst tcp.WriteHalf, src tcp.ReadHalf) error {
	buf := make([]byte, copyBufferSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return dst.Flush()
		}
		if err != nil {
			return err
		}
	}
}
