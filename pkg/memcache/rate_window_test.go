package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateWindowExhaustion(t *testing.T) {
	rw := NewRateWindow(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rw.Allow("user-1"), "attempt %d", i+1)
	}
	assert.False(t, rw.Allow("user-1"))
	assert.Zero(t, rw.Remaining("user-1"))

	// Other keys are unaffected.
	assert.True(t, rw.Allow("user-2"))
	assert.Equal(t, 2, rw.Remaining("user-2"))
}

func TestRateWindowReset(t *testing.T) {
	rw := NewRateWindow(1, time.Minute)

	assert.True(t, rw.Allow("user-1"))
	assert.False(t, rw.Allow("user-1"))

	rw.Reset("user-1")
	assert.True(t, rw.Allow("user-1"))
}

func TestRateWindowExpiry(t *testing.T) {
	rw := NewRateWindow(1, 10*time.Millisecond)

	assert.True(t, rw.Allow("user-1"))
	assert.False(t, rw.Allow("user-1"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rw.Allow("user-1"), "window should have expired")
}
