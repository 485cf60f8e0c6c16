package timeutil

import "time"

// Calendar floors. Each returns a new value in the input's zone with every
// field finer than the floored unit zeroed, and each propagates nil: a nil
// input yields a nil output. Flooring an already-floored value is a no-op.

// FloorToYear floors t to the first of its year (Jan 1, 00:00:00.0).
func FloorToYear(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	f := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return &f
}

// FloorToMonth floors t to the first of its month.
func FloorToMonth(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	f := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return &f
}

// FloorToDay floors t to midnight of its day.
func FloorToDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	f := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &f
}

// FloorToHour floors t to the top of its hour.
func FloorToHour(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	f := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return &f
}

// FloorToFiveMinutes floors t to the enclosing five-minute window:
// minutes 0-4 floor to :00, 5-9 to :05, and so on up to 55-59 -> :55.
func FloorToFiveMinutes(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	min := (t.Minute() / 5) * 5
	f := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), min, 0, 0, t.Location())
	return &f
}

// FloorToMinute floors t to the top of its minute.
func FloorToMinute(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	f := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	return &f
}

// FloorToSecond floors t to the whole second, dropping sub-second precision.
func FloorToSecond(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	f := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	return &f
}
