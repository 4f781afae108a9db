package arena

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"arena/game"
	"arena/protocol"
)

// Arena owns the entity and session registries and relays state between
// clients. All mutation happens on the Run goroutine: connection handlers
// post commands into Inbox and never touch the registries directly, so no
// locks are needed.
type Arena struct {
	Inbox chan any

	entities map[string]*game.Entity
	sessions map[string]*Session

	// frame and lastState mirror the most recent accepted physicsUpdate.
	frame     int
	lastState json.RawMessage

	// authorityGranted latches once the first joiner takes the
	// authoritative role. The role is not handed to anyone else
	// afterwards, even if that session leaves.
	authorityGranted bool

	// nextSeq is the join ordinal. Never reused within the process, which
	// is what keeps ids and spawn points collision-free.
	nextSeq int

	quit    chan struct{}
	log     *zap.SugaredLogger
	metrics *Metrics
}

func New(log *zap.SugaredLogger) *Arena {
	a := &Arena{
		Inbox:    make(chan any, 256),
		entities: make(map[string]*game.Entity),
		sessions: make(map[string]*Session),
		quit:     make(chan struct{}),
		log:      log,
		metrics:  &Metrics{},
	}
	for _, e := range game.SeedEntities() {
		a.entities[e.ID] = e
	}
	return a
}

func (a *Arena) Metrics() *Metrics {
	return a.metrics
}

func (a *Arena) Stop() {
	close(a.quit)
}

// Run drains the mailbox until Stop. Unlike a simulation loop there is no
// ticker here: the relay is purely event-driven.
func (a *Arena) Run() {
	for {
		select {
		case <-a.quit:
			return
		case cmd := <-a.Inbox:
			a.handleCommand(cmd)
		}
	}
}

func (a *Arena) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		a.handleJoin(c)
	case Inbound:
		a.handleInbound(c)
	case Leave:
		a.handleLeave(c.PlayerID)
	case Stats:
		c.Reply <- StatsResult{
			Sessions: len(a.sessions),
			Entities: len(a.entities),
			Frame:    a.frame,
		}
	}
}

// handleJoin admits a connection: fresh ids, a spawned ball, the welcome
// snapshot for the joiner, and a playerJoined broadcast for everyone else.
func (a *Arena) handleJoin(c Join) {
	// Skip any ordinal whose ball id is already live. The world seeds are
	// named ball3/ball4, so without this the third joiner would overwrite
	// a world-fixed body and destroy it again on leave.
	for {
		a.nextSeq++
		if _, taken := a.entities[fmt.Sprintf("ball%d", a.nextSeq)]; !taken {
			break
		}
	}
	n := a.nextSeq
	playerID := fmt.Sprintf("player%d", n)
	ballID := fmt.Sprintf("ball%d", n)

	sess := &Session{
		PlayerID:  playerID,
		BallID:    ballID,
		Conn:      c.Conn,
		Connected: true,
	}
	if !a.authorityGranted {
		sess.Authoritative = true
		a.authorityGranted = true
	}

	ent := game.NewPlayerEntity(ballID, n)
	a.entities[ballID] = ent
	a.sessions[playerID] = sess

	welcome := protocol.Welcome{
		Type:         protocol.MsgWelcome,
		PlayerID:     playerID,
		BallID:       ballID,
		Frame:        a.frame,
		Entities:     a.entitySnapshots(),
		OtherPlayers: a.otherPlayers(playerID),
	}
	if b, err := protocol.Encode(welcome); err != nil {
		a.log.Errorw("encode welcome", "player", playerID, "err", err)
	} else if err := sess.Conn.Send(b); err != nil {
		a.metrics.IncSendsSkipped()
	}

	a.broadcast(protocol.PlayerJoined{
		Type:     protocol.MsgPlayerJoined,
		PlayerID: playerID,
		BallID:   ballID,
		Entity:   snapshotEntity(ent),
	}, sess.Conn)

	a.metrics.IncJoins()
	a.log.Infow("player joined",
		"player", playerID, "ball", ballID, "authoritative", sess.Authoritative)

	if c.Reply != nil {
		c.Reply <- JoinResult{PlayerID: playerID, BallID: ballID}
	}
}

// handleInbound classifies one raw frame and dispatches it. Malformed
// frames are logged and dropped; the connection stays open. Unknown types
// are ignored outright so newer clients can speak newer frames.
func (a *Arena) handleInbound(in Inbound) {
	sess, ok := a.sessions[in.PlayerID]
	if !ok {
		return
	}

	h, err := protocol.DecodeHeader(in.Data)
	if err != nil {
		a.dropMalformed(in.PlayerID, err)
		return
	}

	switch h.Type {
	case protocol.MsgInput:
		msg, err := protocol.DecodePayload[protocol.Input](in.Data)
		if err != nil {
			a.dropMalformed(in.PlayerID, err)
			return
		}
		sess.LastInput = &InputRecord{
			Payload:     msg.Input,
			TimestampMs: time.Now().UnixMilli(),
			Frame:       msg.Frame,
		}
		a.broadcast(protocol.PlayerInput{
			Type:     protocol.MsgPlayerInput,
			PlayerID: sess.PlayerID,
			BallID:   sess.BallID,
			Input:    msg.Input,
			Frame:    a.frame,
		}, sess.Conn)
		a.metrics.IncInputsRelayed()

	case protocol.MsgPhysicsUpdate:
		if !sess.Authoritative {
			// Expected from non-authoritative clients that still run a
			// local simulation; not a protocol violation.
			a.metrics.IncPhysicsRejected()
			return
		}
		msg, err := protocol.DecodePayload[protocol.PhysicsUpdate](in.Data)
		if err != nil {
			a.dropMalformed(in.PlayerID, err)
			return
		}
		a.lastState = msg.State
		a.frame = msg.Frame
		a.broadcast(protocol.PhysicsSync{
			Type:      protocol.MsgPhysicsSync,
			State:     msg.State,
			Frame:     msg.Frame,
			Timestamp: time.Now().UnixMilli(),
		}, sess.Conn)
		a.metrics.IncPhysicsAccepted()
	}
}

func (a *Arena) dropMalformed(playerID string, err error) {
	a.metrics.IncMalformedDropped()
	a.log.Warnw("drop malformed frame", "player", playerID, "err", err)
}

// handleLeave tears a session down. Close and error paths can both land
// here for the same session; the second call finds nothing and returns.
func (a *Arena) handleLeave(playerID string) {
	sess, ok := a.sessions[playerID]
	if !ok {
		return
	}
	delete(a.sessions, playerID)
	delete(a.entities, sess.BallID)
	sess.Connected = false
	_ = sess.Conn.Close()

	a.broadcast(protocol.PlayerLeft{
		Type:     protocol.MsgPlayerLeft,
		PlayerID: playerID,
		BallID:   sess.BallID,
	}, nil)

	a.metrics.IncLeaves()
	a.log.Infow("player left",
		"player", playerID, "ball", sess.BallID, "authoritative", sess.Authoritative)
}

// broadcast serializes msg once and fans it out to every open connection
// except exclude. A failed send is skipped rather than retried: that
// connection's own read loop surfaces the fault as a Leave soon enough.
func (a *Arena) broadcast(msg any, exclude Conn) {
	b, err := protocol.Encode(msg)
	if err != nil {
		a.log.Errorw("encode broadcast", "err", err)
		return
	}
	for _, sess := range a.sessions {
		if sess.Conn == nil || sess.Conn == exclude {
			continue
		}
		if err := sess.Conn.Send(b); err != nil {
			a.metrics.IncSendsSkipped()
		}
	}
}

func (a *Arena) entitySnapshots() []protocol.Entity {
	out := make([]protocol.Entity, 0, len(a.entities))
	for _, e := range a.entities {
		out = append(out, snapshotEntity(e))
	}
	return out
}

func (a *Arena) otherPlayers(exceptID string) []protocol.PlayerRef {
	out := make([]protocol.PlayerRef, 0, len(a.sessions))
	for id, s := range a.sessions {
		if id == exceptID {
			continue
		}
		out = append(out, protocol.PlayerRef{PlayerID: id, BallID: s.BallID})
	}
	return out
}

func snapshotEntity(e *game.Entity) protocol.Entity {
	return protocol.Entity{
		ID:       e.ID,
		Position: protocol.Vec2{X: e.X, Y: e.Y},
		Velocity: protocol.Vec2{X: e.VX, Y: e.VY},
		Mass:     e.Mass,
		Radius:   e.Radius,
	}
}
