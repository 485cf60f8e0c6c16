package patternfile

import (
	"fmt"
	"time"

	"github.com/MrSnakeDoc/logstamp/internal/domain"
)

// Mapper converts pattern file entries to domain.Pattern values
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapPatterns converts a FileConfig to []*domain.Pattern, preserving file
// order. Every entry must carry a unique name, a compilable format and,
// when given, a resolvable zone; a bad entry fails the whole file so a typo
// cannot silently change which pattern wins.
func (m *Mapper) MapPatterns(config FileConfig) ([]*domain.Pattern, error) {
	patterns := make([]*domain.Pattern, 0, len(config.Patterns))
	seen := make(map[string]bool)

	for i, entry := range config.Patterns {
		if entry.Name == "" {
			return nil, fmt.Errorf("pattern #%d has no name", i+1)
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate pattern name %q", entry.Name)
		}
		seen[entry.Name] = true

		if entry.Format == "" {
			return nil, fmt.Errorf("pattern %q has no format", entry.Name)
		}

		loc := time.UTC
		if entry.Zone != "" {
			var err error
			loc, err = time.LoadLocation(entry.Zone)
			if err != nil {
				return nil, fmt.Errorf("pattern %q has unknown zone %q: %w", entry.Name, entry.Zone, err)
			}
		}

		p, err := domain.NewPattern(entry.Name, entry.Format, loc)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}

	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns found in pattern file")
	}

	return patterns, nil
}
