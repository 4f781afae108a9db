package protocol

import "encoding/json"

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Entity is the wire form of a simulated body, identical to the shape the
// client seeds its physics world from.
type Entity struct {
	ID       string  `json:"id"`
	Position Vec2    `json:"position"`
	Velocity Vec2    `json:"velocity"`
	Mass     float64 `json:"mass"`
	Radius   float64 `json:"radius"`
}

// PlayerRef pairs a player with the ball it owns.
type PlayerRef struct {
	PlayerID string `json:"playerId"`
	BallID   string `json:"ballId"`
}

// Welcome is the only unicast reply in the protocol, sent once to a client
// right after admission.
type Welcome struct {
	Type         string      `json:"type"`
	PlayerID     string      `json:"playerId"`
	BallID       string      `json:"ballId"`
	Frame        int         `json:"frame"`
	Entities     []Entity    `json:"entities"`
	OtherPlayers []PlayerRef `json:"otherPlayers"`
}

type PlayerJoined struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
	BallID   string `json:"ballId"`
	Entity   Entity `json:"entity"`
}

type PlayerInput struct {
	Type     string          `json:"type"`
	PlayerID string          `json:"playerId"`
	BallID   string          `json:"ballId"`
	Input    json.RawMessage `json:"input"`
	Frame    int             `json:"frame"`
}

type PhysicsSync struct {
	Type      string          `json:"type"`
	State     json.RawMessage `json:"state"`
	Frame     int             `json:"frame"`
	Timestamp int64           `json:"timestamp"`
}

type PlayerLeft struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
	BallID   string `json:"ballId"`
}
