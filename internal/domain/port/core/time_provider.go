package core

import "time"

// Duration keeps domain code free of direct time.Duration arithmetic on the clock
type Duration time.Duration

// Units used by callers and tests
const (
	Millisecond = Duration(time.Millisecond)
	Second      = Duration(time.Second)
	Minute      = Duration(time.Minute)
	Hour        = Duration(time.Hour)
)

// Std converts back to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock. Entities stamp CreatedAt/UpdatedAt/SettledAt
// through it, and the reconciler derives its age window from Now.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
}
