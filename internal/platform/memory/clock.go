package memory

import "time"

// Clock returns the current time. Stores use it to stamp audit columns.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
