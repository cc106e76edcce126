package tcp

import (
	"net"
)

// Stream is a bidirectional byte stream over one accepted connection
type Stream interface {
	// Split consumes the stream and returns its two halves. Each half may be
	// driven from its own goroutine; neither may be split further
	Split() (ReadHalf, WriteHalf)

	// RemoteAddr returns the peer address of the underlying connection
	RemoteAddr() net.Addr

	// Close closes the underlying connection, both directions
	Close() error
}

// ReadHalf is the receive direction of a split Stream.
// Read returns 0, io.EOF after the peer closes its write side
type ReadHalf interface {
	Read(p []byte) (n int, err error)
}

// WriteHalf is the send direction of a split Stream
type WriteHalf interface {
	Write(p []byte) (n int, err error)

	// Flush pushes any buffered bytes to the connection
	Flush() error

	// Close half-closes the write direction, signalling EOF to the peer.
	// The read half stays usable
	Close() error
}
