package signal

import (
	"errors"
	"sync"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/gorilla/websocket"
)

var (
	ErrBackpressure = errors.New("backpressure")
	ErrConnClosed   = errors.New("connection closed")
)

// wsSignalConn is the websocket endpoint of one connection. Only the write
// pump writes to the socket; everyone else goes through TrySend.
type wsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func newWSSignalConn(ws *websocket.Conn, buffer int) *wsSignalConn {
	return &wsSignalConn{
		conn: ws,
		send: make(chan core.Frame, buffer),
	}
}

func (c *wsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrConnClosed
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsSignalConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
}
