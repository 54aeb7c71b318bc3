package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/mordant23/throbber"
)

const (
	ExitSuccess     = 0
	ExitConfigError = 1
)

var (
	version = "dev"
)

type CLI struct {
	Message    string
	Interval   time.Duration
	Frames     string
	ConfigPath string
}

func parseArgs() (*CLI, error) {
	cli := &CLI{}

	flag.StringVar(&cli.Message, "message", "", "Run a single step with this message instead of a scenario")
	flag.DurationVar(&cli.Interval, "interval", 0, "Override frame interval (e.g. 100ms)")
	flag.StringVar(&cli.Frames, "frames", "", "Frame table: default, circle, rotate, move-eq, move-min, move-eq-long, move-min-long")
	flag.StringVar(&cli.ConfigPath, "config", "", "Scenario file (YAML)")
	flag.StringVar(&cli.ConfigPath, "c", "", "Scenario file (shorthand)")

	showVersion := flag.Bool("version", false, "Show version")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: throbber-demo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Animate a terminal throbber through a scenario of work steps.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("throbber-demo %s\n", version)
		os.Exit(ExitSuccess)
	}

	if cli.Frames != "" {
		if _, ok := frameTables[cli.Frames]; !ok {
			return nil, fmt.Errorf("unknown frame table %q", cli.Frames)
		}
	}

	return cli, nil
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func loadScenario(cli *CLI) (*Scenario, error) {
	if cli.Message != "" {
		return &Scenario{
			Steps: []Step{
				{Message: cli.Message, Duration: Duration(2 * time.Second), Done: cli.Message},
			},
		}, nil
	}
	if cli.ConfigPath != "" {
		return LoadScenario(cli.ConfigPath)
	}
	return defaultScenario(), nil
}

func run(cli *CLI, sc *Scenario, tty bool) error {
	frames := frameTables["default"]
	if sc.Frames != "" {
		frames = frameTables[sc.Frames]
	}
	if cli.Frames != "" {
		frames = frameTables[cli.Frames]
	}

	interval := 200 * time.Millisecond
	if sc.Interval != 0 {
		interval = time.Duration(sc.Interval)
	}
	if cli.Interval != 0 {
		interval = cli.Interval
	}

	t := throbber.New().Interval(interval).Frames(frames)
	for _, step := range sc.Steps {
		// Without a terminal the animation is skipped entirely;
		// Success/Fail then print their status line directly.
		if tty {
			t.StartWithMsg(step.Message)
		}
		time.Sleep(time.Duration(step.Duration))

		done := step.Done
		if done == "" {
			done = step.Message
		}
		if step.Outcome == "fail" {
			t.Fail(done)
		} else {
			t.Success(done)
		}
	}
	return t.Close()
}

func main() {
	cli, err := parseArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(ExitConfigError)
	}

	sc, err := loadScenario(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	if err := run(cli, sc, isTTY()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
