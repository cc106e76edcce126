package tcp

import (
	"context"
)

// HandlerFunc adapts an ordinary function to the Handler interface, so a plain
// function can serve connections without declaring a named type
type HandlerFunc func(ctx context.Context, stream Stream) error

// Handle calls f(ctx, stream)
func (f HandlerFunc) Handle(ctx context.Context, stream Stream) error {
	return f(ctx, stream)
}

// Handler handles one accepted connection and reports its outcome.
// The same Handler value is shared by every worker, so implementations
// must be safe for concurrent use
type Handler interface {
	Handle(ctx context.Context, stream Stream) error
}
