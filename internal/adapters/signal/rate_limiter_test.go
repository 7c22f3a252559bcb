package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventRateLimiter_SlidingWindow(t *testing.T) {
	req := require.New(t)
	now := time.Unix(1_700_000_000, 0)
	rl := NewEventRateLimiter(2, 10*time.Second)
	rl.now = func() time.Time { return now }

	// Given two attempts inside the window
	req.True(rl.Allow("A"))
	req.True(rl.Allow("A"))

	// Then the third is refused while another connection is unaffected
	req.False(rl.Allow("A"))
	req.True(rl.Allow("B"))

	// When the window slides past the first attempts
	now = now.Add(11 * time.Second)
	req.True(rl.Allow("A"))
}

func TestEventRateLimiter_ForgetResets(t *testing.T) {
	req := require.New(t)
	rl := NewEventRateLimiter(1, time.Hour)

	req.True(rl.Allow("A"))
	req.False(rl.Allow("A"))

	rl.Forget("A")
	req.True(rl.Allow("A"))
}

func TestEventRateLimiter_DisabledOrNil(t *testing.T) {
	req := require.New(t)
	var nilLimiter *EventRateLimiter
	disabled := NewEventRateLimiter(0, time.Second)

	for i := 0; i < 100; i++ {
		req.True(nilLimiter.Allow("A"))
		req.True(disabled.Allow("A"))
	}
	nilLimiter.Forget("A")
}
