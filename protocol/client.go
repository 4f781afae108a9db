package protocol

import "encoding/json"

// Frames coming in from the client. Input and state payloads are opaque to
// the server: it relays them between clients without interpreting them.

type Input struct {
	Type  string          `json:"type"`
	Input json.RawMessage `json:"input"`
	Frame int             `json:"frame"`
}

type PhysicsUpdate struct {
	Type  string          `json:"type"`
	State json.RawMessage `json:"state"`
	Frame int             `json:"frame"`
}
