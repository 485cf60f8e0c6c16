package domain

import "time"

// Match is the result of scanning one name for an embedded timestamp.
type Match struct {
	// Input is the scanned name, verbatim.
	Input string

	// PatternName identifies the pattern that extracted the timestamp.
	PatternName string

	// Time is the extracted timestamp, in the pattern's zone.
	Time time.Time
}
