package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseEmbedded(t *testing.T) {
	got, err := ParseEmbedded("app.2008-05-01.log")
	if err != nil {
		t.Fatalf("ParseEmbedded() error = %v", err)
	}

	want := time.Date(2008, time.May, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseEmbedded() = %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("ParseEmbedded() zone = %v, want UTC", got.Location())
	}
}

func TestParseEmbeddedNoDate(t *testing.T) {
	_, err := ParseEmbedded("no-date-here")
	if err == nil {
		t.Fatal("ParseEmbedded() with no embedded date should return error")
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseEmbedded() error = %v, want ErrInvalidFormat kind", err)
	}

	var ife *InvalidFormatError
	if !errors.As(err, &ife) {
		t.Fatalf("ParseEmbedded() error type = %T, want *InvalidFormatError", err)
	}
	if ife.Text != "no-date-here" {
		t.Errorf("error Text = %q, want %q", ife.Text, "no-date-here")
	}
	if ife.Expr != `\d\d\d\d-\d\d-\d\d` {
		t.Errorf("error Expr = %q, want %q", ife.Expr, `\d\d\d\d-\d\d-\d\d`)
	}
	if ife.Pattern != "yyyy-MM-dd" {
		t.Errorf("error Pattern = %q, want %q", ife.Pattern, "yyyy-MM-dd")
	}
}

func TestParseEmbeddedIn(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    time.Time
		wantErr bool
	}{
		{
			name:    "compact datetime in archive name",
			text:    "app-20090624-151112.log.gz",
			pattern: "yyyyMMdd-HHmmss",
			want:    time.Date(2009, time.June, 24, 15, 11, 12, 0, time.UTC),
		},
		{
			name:    "dashed pattern cannot match compact digits",
			text:    "app-20090624-151112.log.gz",
			pattern: "yyyy-MM-dd-HHmmss",
			wantErr: true,
		},
		{
			name:    "dashed datetime",
			text:    "worker-2023-11-05-063000.log",
			pattern: "yyyy-MM-dd-HHmmss",
			want:    time.Date(2023, time.November, 5, 6, 30, 0, 0, time.UTC),
		},
		{
			name:    "day first with slashes",
			text:    "backup 24/06/2009 full",
			pattern: "dd/MM/yyyy",
			want:    time.Date(2009, time.June, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unpadded month and day",
			text:    "v 2009-6-4 x",
			pattern: "yyyy-M-d",
			want:    time.Date(2009, time.June, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "two digit year",
			text:    "log.090624.txt",
			pattern: "yyMMdd",
			want:    time.Date(2009, time.June, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "no embedded date",
			text:    "no-date-here",
			pattern: "yyyy-MM-dd",
			wantErr: true,
		},
		{
			name:    "matched digits do not parse",
			text:    "file.9999-99-99.log",
			pattern: "yyyy-MM-dd",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEmbeddedIn(tt.text, tt.pattern, time.UTC)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseEmbeddedIn(%q, %q) expected error, got %v", tt.text, tt.pattern, got)
				}
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat kind", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEmbeddedIn(%q, %q) error = %v", tt.text, tt.pattern, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseEmbeddedIn(%q, %q) = %v, want %v", tt.text, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParseEmbeddedLeftmost(t *testing.T) {
	got, err := ParseEmbedded("a.2001-01-01.b.2002-02-02.c")
	if err != nil {
		t.Fatalf("ParseEmbedded() error = %v", err)
	}

	want := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseEmbedded() = %v, want the leftmost date %v", got, want)
	}
}

func TestParseEmbeddedInZone(t *testing.T) {
	offset := time.FixedZone("UTC-8", -8*60*60)

	got, err := ParseEmbeddedIn("app.2008-05-01.log", "yyyy-MM-dd", offset)
	if err != nil {
		t.Fatalf("ParseEmbeddedIn() error = %v", err)
	}

	want := time.Date(2008, time.May, 1, 0, 0, 0, 0, offset)
	if !got.Equal(want) {
		t.Errorf("ParseEmbeddedIn() = %v, want %v", got, want)
	}
	if got.Location() != offset {
		t.Errorf("ParseEmbeddedIn() zone = %v, want %v", got.Location(), offset)
	}
}

func TestParseEmbeddedInNilZone(t *testing.T) {
	got, err := ParseEmbeddedIn("app.2008-05-01.log", "yyyy-MM-dd", nil)
	if err != nil {
		t.Fatalf("ParseEmbeddedIn() error = %v", err)
	}
	if got.Location() != time.UTC {
		t.Errorf("ParseEmbeddedIn() with nil zone = %v, want UTC", got.Location())
	}
}

func TestParseFailureCarriesCause(t *testing.T) {
	_, err := ParseEmbedded("file.9999-99-99.log")
	if err == nil {
		t.Fatal("expected error for unparseable matched digits")
	}

	var ife *InvalidFormatError
	if !errors.As(err, &ife) {
		t.Fatalf("error type = %T, want *InvalidFormatError", err)
	}
	if ife.Cause == nil {
		t.Error("error Cause = nil, want the underlying parse error")
	}
	if ife.Text != "file.9999-99-99.log" {
		t.Errorf("error Text = %q, want the searched text", ife.Text)
	}
}

func TestCompileEmbeddedErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty pattern", ""},
		{"three digit year", "yyy"},
		{"unpadded hour", "H"},
		{"unknown letters", "abc"},
		{"literal digit", "yyyy2"},
		{"broken expression", "yyyy("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileEmbedded(tt.pattern)
			if err == nil {
				t.Fatalf("CompileEmbedded(%q) expected error", tt.pattern)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("CompileEmbedded(%q) error = %v, want ErrInvalidFormat kind", tt.pattern, err)
			}
		})
	}
}

func TestTranslateLayout(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd", "2006-01-02"},
		{"yyyyMMdd", "20060102"},
		{"yyyyMMdd-HHmmss", "20060102-150405"},
		{"yyyy-MM-dd-HHmmss", "2006-01-02-150405"},
		{"dd/MM/yyyy", "02/01/2006"},
		{"M/d/yy", "1/2/06"},
		{"HHmmss", "150405"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := translateLayout(tt.pattern)
			if err != nil {
				t.Fatalf("translateLayout(%q) error = %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("translateLayout(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestDeriveExpr(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd", `\d\d\d\d-\d\d-\d\d`},
		{"yyyyMMdd", `\d\d\d\d\d\d\d\d`},
		{"M/d", `\d/\d`},
		{"yyyy.MM.dd", `\d\d\d\d.\d\d.\d\d`}, // dot copied through unescaped
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := deriveExpr(tt.pattern)
			if got != tt.want {
				t.Errorf("deriveExpr(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMustCompileEmbedded(t *testing.T) {
	p := MustCompileEmbedded("yyyy-MM-dd")
	if p.String() != "yyyy-MM-dd" {
		t.Errorf("String() = %q, want %q", p.String(), "yyyy-MM-dd")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompileEmbedded() with a bad pattern should have panicked")
		}
	}()
	MustCompileEmbedded("qqq")
}
