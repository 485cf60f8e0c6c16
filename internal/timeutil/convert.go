package timeutil

import "time"

// ToTime interprets ms as milliseconds since the Unix epoch and returns the
// instant in UTC. A nil input yields a nil output.
func ToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}

// ToMillis returns t's instant as milliseconds since the Unix epoch.
// Zone identity is discarded. A nil input yields a nil output.
func ToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// Copy returns a new value at the same instant, fixed to UTC.
// The result never aliases the input. A nil input yields a nil output.
func Copy(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := t.UTC()
	return &c
}

// Now returns the current instant in UTC.
func Now() time.Time {
	return time.Now().UTC()
}
