package arena

// Conn is the transport-side contract the relay needs: write one frame,
// close. Anything that can do that (a websocket write pump, a test fake)
// can carry a session.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once per connection after the websocket upgrade.
type Join struct {
	Conn  Conn
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
	BallID   string
}

// Inbound: one raw frame read from a session's connection. Decoding happens
// on the arena goroutine so a poison frame is contained there.
type Inbound struct {
	PlayerID string
	Data     []byte
}

// Leave: issued on disconnect or read error. Both paths may fire for the
// same session; the second one is a no-op.
type Leave struct {
	PlayerID string
}

// Stats: point-in-time observability probe, answered from the arena
// goroutine so the counts are consistent.
type Stats struct {
	Reply chan<- StatsResult
}

type StatsResult struct {
	Sessions int
	Entities int
	Frame    int
}
