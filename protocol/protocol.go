package protocol

// Message type tags. Every frame in either direction is a flat JSON object
// carrying one of these in its "type" field.
const (
	// client -> server
	MsgInput         = "input"
	MsgPhysicsUpdate = "physicsUpdate"

	// server -> client
	MsgWelcome      = "welcome"
	MsgPlayerJoined = "playerJoined"
	MsgPlayerInput  = "playerInput"
	MsgPhysicsSync  = "physicsSync"
	MsgPlayerLeft   = "playerLeft"
)

// Header is the tag-only view of a frame, decoded first so the router can
// pick a payload shape before committing to a full unmarshal.
type Header struct {
	Type string `json:"type"`
}
