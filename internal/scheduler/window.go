package scheduler

import (
	"errors"
	"time"
)

var ErrBadLookback = errors.New("lookback must be a positive number of minutes")

// ComputeWindow derives the UTC query window [now-lookback, now]. The
// caller captures "now" so a fixed clock can be injected in tests.
func ComputeWindow(now time.Time, lookbackMinutes int) (time.Time, time.Time, error) {
	if lookbackMinutes <= 0 {
		return time.Time{}, time.Time{}, ErrBadLookback
	}
	to := now.UTC()
	from := to.Add(-time.Duration(lookbackMinutes) * time.Minute)
	return from, to, nil
}
