package core

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/dkeye/Relay/internal/domain"
)

var ErrDecode = errors.New("decode frame")

// Message is a decoded frame. Payload fields other than the discriminators
// are never interpreted; the compacted frame is kept for forwarding.
type Message struct {
	Role    domain.Role
	RoleRaw string
	Type    domain.MessageType
	wire    Frame
}

type envelope struct {
	Role json.RawMessage `json:"role"`
	Type json.RawMessage `json:"type"`
}

// Decode parses a raw frame. Anything that is not a JSON object is an ErrDecode.
func Decode(raw []byte) (*Message, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: not a JSON object", ErrDecode)
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	m := &Message{wire: Frame(buf.Bytes())}
	// Non-string discriminators are treated as absent.
	if s, ok := asString(env.Role); ok {
		m.RoleRaw = s
		m.Role = domain.ParseRole(s)
	}
	if s, ok := asString(env.Type); ok {
		m.Type = domain.MessageType(s)
	}
	return m, nil
}

// Encode returns the wire form of m. The same message always encodes to the
// same bytes, so cached frames can be forwarded verbatim.
func Encode(m *Message) Frame {
	out := make(Frame, len(m.wire))
	copy(out, m.wire)
	return out
}

func asString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
