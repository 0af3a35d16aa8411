package utils

import "time"

// Philippine time (PHT, +08:00)
var phLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Manila"); err == nil {
		return loc
	}
	return time.FixedZone("PHT", 8*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsPH converts an epoch value in seconds to Philippine time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsPH(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(phLoc)
}

func FormatRFC3339PH(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(phLoc).Format(time.RFC3339)
}
