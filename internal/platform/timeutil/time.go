package timeutil

import "time"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
// Log timestamps use this layout.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// UnixSeconds returns whole seconds elapsed since the Unix epoch.
// Instants before the epoch clamp to zero.
func UnixSeconds(t time.Time) uint64 {
	secs := t.Unix()
	if secs < 0 {
		return 0
	}
	return uint64(secs)
}

// NowUnix returns the current wall-clock time as Unix seconds.
func NowUnix() uint64 {
	return UnixSeconds(time.Now())
}
