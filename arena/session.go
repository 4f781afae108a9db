package arena

import "encoding/json"

// Session is the server-side record of one connected player.
type Session struct {
	PlayerID  string
	BallID    string
	Conn      Conn
	Connected bool

	// Authoritative marks the one session whose physicsUpdate frames are
	// accepted as ground truth. Granted once, to the first joiner; the
	// role is not re-elected if that session leaves.
	Authoritative bool

	// LastInput is the most recent input seen from this session. Kept for
	// inspection only, never replayed.
	LastInput *InputRecord
}

// InputRecord is an input payload stamped with server receipt time.
type InputRecord struct {
	Payload     json.RawMessage
	TimestampMs int64
	Frame       int
}
