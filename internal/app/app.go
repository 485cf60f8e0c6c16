package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MrSnakeDoc/logstamp/internal/config"
	"github.com/MrSnakeDoc/logstamp/internal/domain"
	"github.com/MrSnakeDoc/logstamp/internal/hostname"
	"github.com/MrSnakeDoc/logstamp/internal/logger"
	"github.com/MrSnakeDoc/logstamp/internal/scan"
	"github.com/MrSnakeDoc/logstamp/internal/sources/patternfile"
	"github.com/MrSnakeDoc/logstamp/internal/timeutil"
	"github.com/MrSnakeDoc/logstamp/internal/version"
)

const usageText = `usage: logstamp <command> [options]

commands:
  scan      extract embedded timestamps from log file names
  host      split a hostname (default: this machine's) into host and domain
  version   print build information

run "logstamp <command> -h" for command options`

type App struct {
	cfg    *config.Config
	logger logger.Logger
	out    io.Writer
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		out:    os.Stdout,
	}
}

func (a *App) Run(args []string) error {
	a.logger.Debugf("logstamp %s starting", version.Version)

	if len(args) == 0 {
		fmt.Fprintln(a.out, usageText)
		return fmt.Errorf("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "scan":
		return a.runScan(rest)
	case "host":
		return a.runHost(rest)
	case "version":
		return a.runVersion()
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usageText)
		return nil
	default:
		fmt.Fprintln(a.out, usageText)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	adhoc := fs.String("pattern", "", "single ad-hoc date pattern, overrides the pattern list (ex: yyyy-MM-dd)")
	file := fs.String("patterns", a.cfg.PatternFile, "path to a patterns.yaml file")
	zone := fs.String("zone", a.cfg.Zone, "IANA zone for the ad-hoc pattern")
	floor := fs.String("floor", "", "floor results to a bucket: year, month, day, hour, 5min, minute, second")

	help, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if help {
		return nil
	}

	names := fs.Args()
	if len(names) == 0 {
		return fmt.Errorf("scan: no names given")
	}

	floorFn, err := floorFunc(*floor)
	if err != nil {
		return err
	}

	patterns, err := a.patterns(*adhoc, *file, *zone)
	if err != nil {
		return err
	}

	scanner := scan.NewScanner(patterns, a.logger)
	matches, scanErr := scanner.ScanAll(names)

	for _, m := range matches {
		t := m.Time
		if floorFn != nil {
			t = *floorFn(&t)
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", m.Input, m.PatternName, t.Format(time.RFC3339))
	}

	return scanErr
}

func (a *App) runHost(args []string) error {
	fs := flag.NewFlagSet("host", flag.ContinueOnError)

	help, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if help {
		return nil
	}

	var host, domainPart *string
	switch fs.NArg() {
	case 0:
		host, domainPart, err = hostname.Local()
		if err != nil {
			return err
		}
	case 1:
		host, domainPart = hostname.Split(hostname.StripPort(fs.Arg(0)))
	default:
		return fmt.Errorf("host: expected at most one name, got %d", fs.NArg())
	}

	fmt.Fprintf(a.out, "host:   %s\n", orNone(host))
	fmt.Fprintf(a.out, "domain: %s\n", orNone(domainPart))
	return nil
}

func (a *App) runVersion() error {
	fmt.Fprintln(a.out, version.String())
	return nil
}

// patterns resolves the pattern list for a scan. An ad-hoc pattern beats the
// pattern file, and the built-ins apply when neither is given.
func (a *App) patterns(adhoc, file, zone string) ([]*domain.Pattern, error) {
	if adhoc != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("unknown zone %q: %w", zone, err)
		}
		p, err := domain.NewPattern("adhoc", adhoc, loc)
		if err != nil {
			return nil, err
		}
		return []*domain.Pattern{p}, nil
	}

	if file != "" {
		fileConfig, err := patternfile.NewLoader(file).Load()
		if err != nil {
			return nil, err
		}
		patterns, err := patternfile.NewMapper().MapPatterns(fileConfig)
		if err != nil {
			return nil, err
		}
		a.logger.Info("pattern file loaded",
			logger.String("file", file),
			logger.Int("patterns", len(patterns)))
		return patterns, nil
	}

	return domain.DefaultPatterns(), nil
}

func floorFunc(name string) (func(*time.Time) *time.Time, error) {
	switch name {
	case "":
		return nil, nil
	case "year":
		return timeutil.FloorToYear, nil
	case "month":
		return timeutil.FloorToMonth, nil
	case "day":
		return timeutil.FloorToDay, nil
	case "hour":
		return timeutil.FloorToHour, nil
	case "5min":
		return timeutil.FloorToFiveMinutes, nil
	case "minute":
		return timeutil.FloorToMinute, nil
	case "second":
		return timeutil.FloorToSecond, nil
	default:
		return nil, fmt.Errorf("unknown floor %q", name)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func orNone(s *string) string {
	if s == nil {
		return "(none)"
	}
	return *s
}
