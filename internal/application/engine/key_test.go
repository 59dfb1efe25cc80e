package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyUp, "Up"},
		{KeyDown, "Down"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeySpace, "Space"},
		{KeyUnknown, "Unknown"},
		{Key(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.key.String())
		})
	}
}

func TestStepClock(t *testing.T) {
	c := NewStepClock(t0)
	assert.Equal(t, t0, c.Now())

	c.Advance(16 * time.Millisecond)
	c.Advance(16 * time.Millisecond)
	assert.Equal(t, 32*time.Millisecond, c.Now().Sub(t0))
}

func TestSystemClock_IsMonotonic(t *testing.T) {
	var c SystemClock
	a := c.Now()
	b := c.Now()
	assert.False(t, b.Before(a))
}

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		fps      int
		expected time.Duration
	}{
		{60, 16666667 * time.Nanosecond},
		{50, 20 * time.Millisecond},
		{30, 33333334 * time.Nanosecond},
		{1, time.Second},
		{0, 0},
		{-5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FrameDuration(tt.fps), "fps=%d", tt.fps)
	}
}

func TestFrameDuration_WholeFramesReachInterval(t *testing.T) {
	assert.GreaterOrEqual(t, 12*FrameDuration(60), DefaultTickInterval)
	assert.Less(t, 11*FrameDuration(60), DefaultTickInterval)
}
