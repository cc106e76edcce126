package tcp

/**
 * A tcp server dispatching connections to a bounded worker pool
 */

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/lusion/netserve/interface/tcp"
	"github.com/lusion/netserve/lib/logger"
	"github.com/lusion/netserve/lib/sync/atomic"
)

var (
	// ErrHandlerNotSet is returned by Serve when no connect handler was
	// configured. It is detected before any socket is bound
	ErrHandlerNotSet = errors.New("connect handler must be set")

	// ErrServerClosed is returned by Serve invoked on a server that is
	// already serving or has terminated
	ErrServerClosed = errors.New("server closed")
)

// Server accepts connections on one listening socket and runs the configured
// handler for each of them on a fixed-size worker pool
type Server struct {
	poolSize      int
	handleTimeout time.Duration
	handler       tcp.Handler

	serving atomic.Boolean
	mu      sync.Mutex
	laddr   net.Addr
}

// NewServer creates an unconfigured server. The worker pool size defaults to
// the number of logical CPUs
func NewServer() *Server {
	return &Server{
		poolSize: runtime.NumCPU(),
	}
}

// ConnectHandler sets the handler invoked once for every accepted connection.
// The handler is shared by all workers and must be safe for concurrent use
func (s *Server) ConnectHandler(h tcp.Handler) *Server {
	s.handler = h
	return s
}

// PoolSize overrides the number of handler workers. Values below one keep the
// current size
func (s *Server) PoolSize(n int) *Server {
	if n > 0 {
		s.poolSize = n
	}
	return s
}

// HandleTimeout puts a deadline on the context passed to each handler. Zero,
// the default, means no deadline. A handler that ignores its context still
// occupies a worker until it returns
func (s *Server) HandleTimeout(d time.Duration) *Server {
	s.handleTimeout = d
	return s
}

// Addr returns the bound listener address once Serve has bound it, nil before
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.laddr
}

// Serve resolves address, binds a listening socket and accepts connections
// until a fatal error occurs. Each accepted connection is wrapped as a stream
// and handed to the handler on a pool worker; handler errors are logged with
// the connection identity and never stop the loop. Listener errors and pool
// submission failures are fatal and become the return value.
//
// Serve blocks and is one-shot: after it returns the server must be
// reconstructed to serve again. There is no cancellation of running handlers;
// a handler that never returns occupies its worker slot indefinitely
func (s *Server) Serve(address string) error {
	if s.handler == nil {
		return ErrHandlerNotSet
	}
	if !s.serving.CompareAndSwap(false, true) {
		return ErrServerClosed
	}

	// first resolved address only
	laddr, err := net.ResolveTCPAddr("tcp", address)
	if err != nil {
		return fmt.Errorf("resolve address %q: %w", address, err)
	}
	listener, err := net.ListenTCP("tcp", laddr)
	if err != nil {
		return fmt.Errorf("bind %v: %w", laddr, err)
	}
	defer listener.Close()

	s.mu.Lock()
	s.laddr = listener.Addr()
	s.mu.Unlock()

	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return fmt.Errorf("create worker pool of size %d: %w", s.poolSize, err)
	}
	defer pool.Release()

	logger.Infof("bind: %s, start listening...", listener.Addr())

	for {
		conn, err := listener.Accept()
		if err != nil {
			return fmt.Errorf("accept: %w", err)
		}
		stream := NewNetStream(conn)
		connID := uuid.NewString()
		remote := conn.RemoteAddr()
		logger.Debugf("accept connection %s from %s", connID, remote)

		handler := s.handler
		timeout := s.handleTimeout
		// Submit blocks while every worker is busy; it only fails when the
		// pool cannot schedule at all, which terminates the server
		err = pool.Submit(func() {
			defer stream.Close()
			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			if err := handler.Handle(ctx, stream); err != nil {
				logger.Errorf("connection %s (%s): handler error: %v", connID, remote, err)
			}
		})
		if err != nil {
			_ = stream.Close()
			return fmt.Errorf("dispatch connection %s to worker pool: %w", connID, err)
		}
	}
}
