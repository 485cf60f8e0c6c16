package domain

import (
	"fmt"
	"time"

	"github.com/MrSnakeDoc/logstamp/internal/timeutil"
)

// Pattern is the canonical form of a named embedded-date pattern.
//
// It is NOT tied to the pattern file, CLI flags or any other source.
// All inputs (file entries, ad-hoc flags, built-ins) are mapped into this
// structure. A Pattern is immutable after construction and safe for
// concurrent use.
type Pattern struct {
	// Name identifies the pattern in output and logs.
	// Example: iso-date
	Name string

	// Format is the date pattern the matcher was compiled from.
	// Example: yyyy-MM-dd
	Format string

	// Zone is the location matched text is interpreted in.
	Zone *time.Location

	compiled *timeutil.EmbeddedPattern
}

// NewPattern compiles format into a ready-to-use Pattern.
// A nil loc means UTC.
func NewPattern(name, format string, loc *time.Location) (*Pattern, error) {
	compiled, err := timeutil.CompileEmbedded(format)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", name, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Pattern{
		Name:     name,
		Format:   format,
		Zone:     loc,
		compiled: compiled,
	}, nil
}

// Extract pulls the embedded timestamp out of text, interpreted in the
// pattern's zone.
func (p *Pattern) Extract(text string) (time.Time, error) {
	return p.compiled.Parse(text, p.Zone)
}

// DefaultPatterns returns the built-in pattern list used when no pattern file
// is configured. Order matters: longer patterns come first so a name carrying
// a full timestamp resolves to a datetime rather than just its date.
func DefaultPatterns() []*Pattern {
	return []*Pattern{
		mustPattern("iso-datetime", "yyyy-MM-dd-HHmmss"),
		mustPattern("compact-datetime", "yyyyMMdd-HHmmss"),
		mustPattern("iso-date", "yyyy-MM-dd"),
		mustPattern("compact-date", "yyyyMMdd"),
	}
}

func mustPattern(name, format string) *Pattern {
	p, err := NewPattern(name, format, time.UTC)
	if err != nil {
		panic(err)
	}
	return p
}
