package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"arena/arena"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler returns the /ws endpoint: upgrade, admit through the arena
// mailbox, then hand the socket to its pumps.
func Handler(a *arena.Arena, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnw("upgrade failed", "remote", r.RemoteAddr, "err", err)
			return
		}

		c := NewClientConn(ws, log)
		reply := make(chan arena.JoinResult, 1)
		a.Inbox <- arena.Join{Conn: c, Reply: reply}
		res := <-reply

		log.Infow("connection admitted", "remote", r.RemoteAddr, "player", res.PlayerID)

		go c.writePump()
		go c.readPump(a, res.PlayerID)
	}
}
