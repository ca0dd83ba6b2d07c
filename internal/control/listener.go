package control

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Kodylow/botimint/internal/logging"
)

// Network and timeout constants
const (
	SocketName         = "control.sock"
	SocketCheckTimeout = 100 * time.Millisecond

	listenerRWTimeout = 5 * time.Second
	clientPingTimeout = 2 * time.Second
	clientCmdTimeout  = 5 * time.Second
)

// ListenerConfig holds configuration for a control listener.
type ListenerConfig struct {
	StateDir string
	// Address overrides the socket path derived from StateDir.
	Address    string
	Transport  Transport
	WireFormat WireFormat
	Controller Controller
}

// Listener accepts control connections and dispatches commands.
type Listener struct {
	address    string
	transport  Transport
	wireFormat WireFormat
	netListen  net.Listener
	router     *Router
	done       chan struct{}
	closeOnce  sync.Once
	closeErr   error
}

// NewListener creates a control listener with default configuration.
func NewListener(stateDir string, ctrl Controller) (*Listener, error) {
	return NewListenerWithConfig(ListenerConfig{
		StateDir:   stateDir,
		Controller: ctrl,
	})
}

// NewListenerWithConfig creates a control listener with custom configuration.
// A live listener at the same address is an error; a stale socket file is
// removed.
func NewListenerWithConfig(cfg ListenerConfig) (*Listener, error) {
	if cfg.Transport == nil {
		cfg.Transport = DefaultTransport
	}
	if cfg.WireFormat == nil {
		cfg.WireFormat = DefaultWireFormat
	}

	address := cfg.Address
	if address == "" {
		address = SocketPath(cfg.StateDir)
		if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	checkCtx, cancel := context.WithTimeout(context.Background(), SocketCheckTimeout)
	conn, err := cfg.Transport.Dial(checkCtx, address)
	cancel()
	if err == nil {
		conn.Close()
		return nil, fmt.Errorf("listener already running on %s", address)
	}

	if err := cfg.Transport.Cleanup(address); err != nil {
		return nil, fmt.Errorf("cleanup stale socket: %w", err)
	}

	netListen, err := cfg.Transport.Listen(address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	// Restrict permissions for Unix sockets
	if _, ok := cfg.Transport.(UnixTransport); ok {
		if err := os.Chmod(address, 0o600); err != nil {
			netListen.Close()
			return nil, fmt.Errorf("chmod socket: %w", err)
		}
	}

	router := NewRouter()
	if cfg.Controller != nil {
		router.RegisterController(cfg.Controller)
	}

	return &Listener{
		address:    address,
		transport:  cfg.Transport,
		wireFormat: cfg.WireFormat,
		netListen:  netListen,
		router:     router,
		done:       make(chan struct{}),
	}, nil
}

// Router returns the underlying router for advanced configuration.
func (l *Listener) Router() *Router {
	return l.router
}

// Addr returns the address the listener is bound to.
func (l *Listener) Addr() string {
	return l.netListen.Addr().String()
}

// Start accepts connections until ctx is done or the listener is closed.
func (l *Listener) Start(ctx context.Context) {
	defer close(l.done)

	stop := context.AfterFunc(ctx, func() { _ = l.Close() })
	defer stop()

	for {
		conn, err := l.netListen.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			logging.L().Warn("control listener accept error", "error", err)
			continue
		}
		go l.handleConnection(ctx, conn)
	}
}

// Done is closed when Start returns.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

func (l *Listener) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(listenerRWTimeout))

	msg, err := l.wireFormat.Decode(conn)
	if err != nil {
		logging.L().Debug("control read failed", "error", err)
		return
	}

	// Node calls may wait on the remote side for a long time.
	_ = conn.SetReadDeadline(time.Time{})
	logging.L().Debug("control command", "command", msg.Command)
	resp := l.router.Dispatch(ctx, NewRequest(msg))

	_ = conn.SetWriteDeadline(time.Now().Add(listenerRWTimeout))
	if err := l.wireFormat.Encode(conn, resp); err != nil {
		logging.L().Debug("control write failed", "command", msg.Command, "error", err)
	}
}

// Close shuts down the control listener. It is safe to call more than once.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		var errs []error
		if err := l.netListen.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, fmt.Errorf("close listener: %w", err))
		}
		if err := l.transport.Cleanup(l.address); err != nil {
			errs = append(errs, fmt.Errorf("cleanup: %w", err))
		}
		l.closeErr = errors.Join(errs...)
	})
	return l.closeErr
}

// SocketPath returns the socket path for a state directory.
func SocketPath(stateDir string) string {
	return filepath.Join(stateDir, SocketName)
}

// removeIfExists removes a file if it exists.
func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// isSocketNotAvailable returns true if the error indicates the socket is unavailable.
func isSocketNotAvailable(err error) bool {
	if err == nil {
		return false
	}
	if os.IsNotExist(err) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "no such file") ||
		strings.Contains(errStr, "connection refused")
}
