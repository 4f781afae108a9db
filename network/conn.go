package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"arena/arena"
)

const (
	readLimit     = 1 << 20 // 1MB
	readDeadline  = 60 * time.Second
	writeDeadline = 10 * time.Second
	pingPeriod    = 25 * time.Second
	sendQueueSize = 64
)

var ErrConnClosed = errors.New("connection closed")

// ClientConn adapts one websocket to the relay's Conn contract. Writes go
// through a buffered queue drained by a dedicated pump so a slow client
// can never stall the arena goroutine.
type ClientConn struct {
	ws        *websocket.Conn
	send      chan []byte
	pingEvery time.Duration
	closed    atomic.Bool
	once      sync.Once
	log       *zap.SugaredLogger
}

func NewClientConn(ws *websocket.Conn, log *zap.SugaredLogger) *ClientConn {
	return &ClientConn{
		ws:        ws,
		send:      make(chan []byte, sendQueueSize),
		pingEvery: pingPeriod,
		log:       log,
	}
}

// Send enqueues a frame without blocking. A full queue drops the frame:
// the relay is fire-and-forget and the next physicsSync supersedes
// whatever was lost.
func (c *ClientConn) Send(b []byte) error {
	if c.closed.Load() {
		return ErrConnClosed
	}
	select {
	case c.send <- b:
	default:
	}
	return nil
}

// Close shuts the send queue and the underlying socket. Safe to call more
// than once; the teardown path can reach it from several directions.
func (c *ClientConn) Close() error {
	var err error
	c.once.Do(func() {
		c.closed.Store(true)
		close(c.send)
		err = c.ws.Close()
	})
	return err
}

// writePump is the only goroutine allowed to write to the socket; gorilla
// permits at most one concurrent writer. It drains the send queue and owns
// the keepalive ticker, so pings can never race a data frame. A peer that
// stops answering pings fails its next read deadline and unwinds through
// readPump.
func (c *ClientConn) writePump() {
	ticker := time.NewTicker(c.pingEvery)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump forwards raw frames into the arena mailbox. Any read error
// (clean close, network fault, missed deadline) ends the session the same
// way: one Leave command.
func (c *ClientConn) readPump(a *arena.Arena, playerID string) {
	defer func() {
		a.Inbox <- arena.Leave{PlayerID: playerID}
	}()

	c.ws.SetReadLimit(readLimit)
	_ = c.ws.SetReadDeadline(time.Now().Add(readDeadline))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(readDeadline))
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warnw("read error", "player", playerID, "err", err)
			}
			return
		}
		a.Inbox <- arena.Inbound{PlayerID: playerID, Data: payload}
	}
}
