package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnRateLimiter_SlidingWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	rl := NewConnRateLimiter(2, 10*time.Second)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "clients are limited independently")

	now = now.Add(11 * time.Second)
	assert.True(t, rl.Allow("a"))
}

func TestConnRateLimiter_ZeroLimitDisables(t *testing.T) {
	rl := NewConnRateLimiter(0, time.Second)
	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("a"))
	}
}
