package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// DefaultDatePattern is the pattern assumed when the caller does not supply one.
const DefaultDatePattern = "yyyy-MM-dd"

// ErrInvalidFormat is the kind of every embedded-date extraction failure:
// a malformed pattern, a text without a match, or a matched substring that
// does not parse. Test with errors.Is.
var ErrInvalidFormat = errors.New("invalid date format")

// InvalidFormatError reports a failed embedded-date extraction together with
// the diagnostics needed to reproduce it.
type InvalidFormatError struct {
	Text    string // searched text, empty when the pattern itself is malformed
	Expr    string // digit expression derived from the pattern, when derivation got that far
	Pattern string // the date pattern as supplied by the caller
	Cause   error  // underlying compile or parse error, when any
}

func (e *InvalidFormatError) Error() string {
	switch {
	case e.Text == "" && e.Cause != nil:
		return fmt.Sprintf("invalid date pattern %q: %v", e.Pattern, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("embedded date in %q does not parse (expr %q, pattern %q): %v",
			e.Text, e.Expr, e.Pattern, e.Cause)
	default:
		return fmt.Sprintf("no embedded date in %q (expr %q, pattern %q)",
			e.Text, e.Expr, e.Pattern)
	}
}

func (e *InvalidFormatError) Unwrap() error { return e.Cause }

func (e *InvalidFormatError) Is(target error) bool { return target == ErrInvalidFormat }

// EmbeddedPattern is a compiled date pattern ready to extract timestamps
// embedded in arbitrary strings. It is immutable and safe for concurrent use.
type EmbeddedPattern struct {
	pattern string         // as supplied, ex: "yyyy-MM-dd"
	layout  string         // reference layout, ex: "2006-01-02"
	expr    *regexp.Regexp // digit shape of the pattern, ex: \d\d\d\d-\d\d-\d\d
}

// layoutRuns maps each supported letter run to its reference layout element.
var layoutRuns = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"HH":   "15",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
}

// CompileEmbedded validates pattern and derives the expression used to locate
// its digit shape inside a string. Every failure is an InvalidFormatError.
func CompileEmbedded(pattern string) (*EmbeddedPattern, error) {
	if pattern == "" {
		return nil, &InvalidFormatError{Pattern: pattern, Cause: errors.New("empty pattern")}
	}

	layout, err := translateLayout(pattern)
	if err != nil {
		return nil, &InvalidFormatError{Pattern: pattern, Cause: err}
	}

	exprText := deriveExpr(pattern)
	expr, err := regexp.Compile(exprText)
	if err != nil {
		return nil, &InvalidFormatError{Expr: exprText, Pattern: pattern, Cause: err}
	}

	return &EmbeddedPattern{pattern: pattern, layout: layout, expr: expr}, nil
}

// MustCompileEmbedded is CompileEmbedded for patterns known to be valid.
// It panics on error.
func MustCompileEmbedded(pattern string) *EmbeddedPattern {
	p, err := CompileEmbedded(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern the matcher was compiled from.
func (p *EmbeddedPattern) String() string {
	return p.pattern
}

// Parse locates the leftmost substring of text with the pattern's digit shape
// and parses it in loc. A nil loc means UTC. Failures, whether no substring
// matches or the matched substring does not parse, are InvalidFormatError.
func (p *EmbeddedPattern) Parse(text string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	m := p.expr.FindStringIndex(text)
	if m == nil {
		return time.Time{}, &InvalidFormatError{Text: text, Expr: p.expr.String(), Pattern: p.pattern}
	}

	t, err := time.ParseInLocation(p.layout, text[m[0]:m[1]], loc)
	if err != nil {
		return time.Time{}, &InvalidFormatError{Text: text, Expr: p.expr.String(), Pattern: p.pattern, Cause: err}
	}
	return t, nil
}

// ParseEmbedded extracts a date of the default "yyyy-MM-dd" pattern embedded
// in text, interpreted in UTC. Ex: "app.2008-05-01.log" -> 2008-05-01T00:00:00Z.
func ParseEmbedded(text string) (time.Time, error) {
	return defaultEmbedded.Parse(text, time.UTC)
}

// ParseEmbeddedIn compiles pattern and extracts the date it describes from
// text, interpreted in loc. A nil loc means UTC.
func ParseEmbeddedIn(text, pattern string, loc *time.Location) (time.Time, error) {
	p, err := CompileEmbedded(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return p.Parse(text, loc)
}

var defaultEmbedded = MustCompileEmbedded(DefaultDatePattern)

// translateLayout converts a date pattern to the equivalent reference layout.
// Letter runs translate per layoutRuns; anything else passes through as a
// literal. Literal digits are rejected since the reference layout would read
// them as fields.
func translateLayout(pattern string) (string, error) {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		if !unicode.IsLetter(r) {
			if r >= '0' && r <= '9' {
				return "", fmt.Errorf("literal digit %q is not allowed in a date pattern", r)
			}
			b.WriteRune(r)
			i++
			continue
		}
		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		run := string(runes[i:j])
		elem, ok := layoutRuns[run]
		if !ok {
			return "", fmt.Errorf("unsupported pattern letters %q", run)
		}
		b.WriteString(elem)
		i = j
	}
	return b.String(), nil
}

// deriveExpr builds the digit expression for a pattern: every letter becomes
// \d and every other character is copied through unchanged.
func deriveExpr(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) * 2)
	for _, r := range pattern {
		if unicode.IsLetter(r) {
			b.WriteString(`\d`)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
