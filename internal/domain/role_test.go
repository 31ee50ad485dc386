package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleProducer, ParseRole("producer"))
	assert.Equal(t, RoleProducer, ParseRole("unity"))
	assert.Equal(t, RoleConsumer, ParseRole("consumer"))
	assert.Equal(t, RoleConsumer, ParseRole("browser"))
	assert.Equal(t, RoleNone, ParseRole("Producer"))
	assert.Equal(t, RoleNone, ParseRole(""))
}

func TestDirection(t *testing.T) {
	d, ok := DirectionFrom(RoleProducer)
	assert.True(t, ok)
	assert.Equal(t, ToConsumer, d)
	assert.Equal(t, RoleConsumer, d.Dest())

	d, ok = DirectionFrom(RoleConsumer)
	assert.True(t, ok)
	assert.Equal(t, ToProducer, d)
	assert.Equal(t, RoleProducer, d.Dest())

	_, ok = DirectionFrom(RoleNone)
	assert.False(t, ok)
}
