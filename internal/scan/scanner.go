package scan

import (
	"fmt"

	"github.com/MrSnakeDoc/logstamp/internal/domain"
	"github.com/MrSnakeDoc/logstamp/internal/logger"
)

// Scanner extracts embedded timestamps from names by trying patterns in
// order. It holds no mutable state after construction and is safe for
// concurrent use.
type Scanner struct {
	patterns []*domain.Pattern
	log      logger.Logger
}

// NewScanner creates a scanner over the given pattern list. Order matters:
// the first pattern to extract a timestamp wins.
func NewScanner(patterns []*domain.Pattern, log logger.Logger) *Scanner {
	return &Scanner{
		patterns: patterns,
		log:      log,
	}
}

// Scan tries every pattern against name and returns the first match.
// When every pattern misses, the returned error wraps the last miss so the
// caller can still test its kind with errors.Is.
func (s *Scanner) Scan(name string) (*domain.Match, error) {
	if len(s.patterns) == 0 {
		return nil, fmt.Errorf("no patterns configured")
	}

	var lastErr error
	for _, p := range s.patterns {
		t, err := p.Extract(name)
		if err != nil {
			s.log.Debug("pattern missed",
				logger.String("name", name),
				logger.String("pattern", p.Name))
			lastErr = err
			continue
		}

		s.log.Debug("pattern matched",
			logger.String("name", name),
			logger.String("pattern", p.Name),
			logger.Time("time", t))
		return &domain.Match{Input: name, PatternName: p.Name, Time: t}, nil
	}

	return nil, fmt.Errorf("no pattern matched %q: %w", name, lastErr)
}

// ScanAll scans every name and collects the matches. Names without a match
// do not stop the scan: the matches found are returned together with an
// error naming how many inputs failed.
func (s *Scanner) ScanAll(names []string) ([]*domain.Match, error) {
	matches := make([]*domain.Match, 0, len(names))
	failed := 0

	for _, name := range names {
		m, err := s.Scan(name)
		if err != nil {
			s.log.Warn("no embedded timestamp found",
				logger.String("name", name),
				logger.Error(err))
			failed++
			continue
		}
		matches = append(matches, m)
	}

	s.log.Debug("scan complete",
		logger.Int("matched", len(matches)),
		logger.Int("failed", failed))

	if failed > 0 {
		return matches, fmt.Errorf("%d of %d names had no embedded timestamp", failed, len(names))
	}
	return matches, nil
}
