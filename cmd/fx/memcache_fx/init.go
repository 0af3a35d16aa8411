package memcache_fx

import (
	"time"

	"go.uber.org/fx"
	mem "lakbay/pkg/memcache"
)

var Module = fx.Provide(provideSubmissionLimiter)

// Five generation requests per account per hour.
func provideSubmissionLimiter() mem.SubmissionLimiter {
	return mem.NewRateWindow(5, time.Hour)
}
