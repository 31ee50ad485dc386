package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Relay/internal/domain"
)

func TestDecode_Discriminators(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		role    domain.Role
		roleRaw string
		typ     domain.MessageType
	}{
		{"producer", `{"role":"producer"}`, domain.RoleProducer, "producer", ""},
		{"consumer", `{"role":"consumer"}`, domain.RoleConsumer, "consumer", ""},
		{"legacy producer", `{"role":"unity"}`, domain.RoleProducer, "unity", ""},
		{"unknown role", `{"role":"spectator","type":"offer"}`, domain.RoleNone, "spectator", domain.TypeOffer},
		{"offer", `{"type":"offer","sdp":"v=0"}`, domain.RoleNone, "", domain.TypeOffer},
		{"numeric type", `{"type":1}`, domain.RoleNone, "", ""},
		{"no discriminator", `{"sdp":"x"}`, domain.RoleNone, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.role, m.Role)
			assert.Equal(t, tt.roleRaw, m.RoleRaw)
			assert.Equal(t, tt.typ, m.Type)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", "[]", `"offer"`, "12", "{"} {
		_, err := Decode([]byte(raw))
		assert.True(t, errors.Is(err, ErrDecode), "input %q: %v", raw, err)
	}
}

func TestEncode_StableCompactForm(t *testing.T) {
	m, err := Decode([]byte(" {\n  \"type\" : \"candidate\",\n  \"candidate\": \"a b\" }\n"))
	require.NoError(t, err)

	first := Encode(m)
	assert.Equal(t, `{"type":"candidate","candidate":"a b"}`, string(first))
	assert.Equal(t, first, Encode(m))

	first[0] = 'X'
	assert.Equal(t, byte('{'), Encode(m)[0], "callers get their own copy")
}
