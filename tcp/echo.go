package tcp

/**
 * An echo handler to test whether the server is functioning normally
 */

import (
	"context"

	"github.com/lusion/netserve/interface/tcp"
)

// Echo writes every byte it reads back to the peer. It returns once the
// client closes its write side, after half-closing the server's write side
// in turn. A plain function: register it with tcp.HandlerFunc
func Echo(ctx context.Context, stream tcp.Stream) error {
	reader, writer := stream.Split()
	if err := Copy(writer, reader); err != nil {
		return err
	}
	return writer.Close()
}

// MakeEchoHandler returns Echo wrapped as a Handler
func MakeEchoHandler() tcp.Handler {
	return tcp.HandlerFunc(Echo)
}
