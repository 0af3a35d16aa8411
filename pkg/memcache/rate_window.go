// pkg/mem/rate_window.go
package mem

import (
	"sync"
	"time"
)

// SubmissionLimiter gates repeated itinerary-generation submissions per
// logical client. Fixed window: an attempt counts against the window that
// contains it, old attempts age out.
type SubmissionLimiter interface {
	// Allow records an attempt for key and reports whether it fits inside
	// the window.
	Allow(key string) bool

	// Remaining reports how many attempts key has left in the current window.
	Remaining(key string) int

	// Reset forgets all attempts for key.
	Reset(key string)
}

type RateWindow struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	attempts map[string][]time.Time
}

func NewRateWindow(maxAttempts int, window time.Duration) *RateWindow {
	return &RateWindow{
		max:      maxAttempts,
		window:   window,
		attempts: make(map[string][]time.Time),
	}
}

func (r *RateWindow) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	live := r.prune(key, time.Now())
	if len(live) >= r.max {
		r.attempts[key] = live
		return false
	}
	r.attempts[key] = append(live, time.Now())
	return true
}

func (r *RateWindow) Remaining(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	live := r.prune(key, time.Now())
	r.attempts[key] = live
	if left := r.max - len(live); left > 0 {
		return left
	}
	return 0
}

func (r *RateWindow) Reset(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, key)
}

// prune drops attempts older than the window. Caller holds the lock.
func (r *RateWindow) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-r.window)
	var live []time.Time
	for _, t := range r.attempts[key] {
		if t.After(cutoff) {
			live = append(live, t)
		}
	}
	return live
}
