package ports

import "time"

// Clock supplies the current time to use cases and jobs. Substituting a
// fixed clock in tests makes expiration and timeline behavior deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
