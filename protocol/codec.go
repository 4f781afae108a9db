package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	ErrEmptyFrame  = errors.New("empty frame")
	ErrMissingType = errors.New("frame has no type tag")
)

// Encode marshals an outbound message once; the resulting bytes are what
// the broadcaster hands to every connection.
func Encode(msg any) ([]byte, error) {
	if msg == nil {
		return nil, errors.New("encode nil message")
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "marshal message")
	}
	return b, nil
}

// DecodeHeader reads only the type tag of an inbound frame.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) == 0 {
		return Header{}, ErrEmptyFrame
	}
	var h Header
	if err := json.Unmarshal(b, &h); err != nil {
		return Header{}, errors.Wrap(err, "unmarshal header")
	}
	if h.Type == "" {
		return Header{}, ErrMissingType
	}
	return h, nil
}

// DecodePayload unmarshals the full frame into the shape chosen from its
// header.
func DecodePayload[T any](b []byte) (T, error) {
	var out T
	err := json.Unmarshal(b, &out)
	return out, errors.Wrap(err, "unmarshal payload")
}
