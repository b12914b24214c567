// Command keypadchain prints the total complexity of the door codes in a file
// when typed through chains of directional-keypad robots.
//
// Usage:
//
//	keypadchain [-c config.yaml] [-n robots | -p] [-s scope] [-w workers] [-j] [-H] [-v] [-f] codes.txt
//
// Without -n or -p both parts are solved: 2 robots, then 25.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/katalvlaran/robokeys/codes"
	"github.com/katalvlaran/robokeys/complexity"
	"github.com/katalvlaran/robokeys/config"
	"github.com/katalvlaran/robokeys/report"
)

const partTwoRobots = 25

var errNoInput = errors.New("no input file given")

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(stderr, "keypadchain: ", log.LstdFlags)
	}
	logger.Printf("config: %s", cfg)

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	input, err := codes.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Printf("read %d codes from %s", len(input), cfg.Input)

	var opts []complexity.Option
	if cfg.Workers > 0 {
		opts = append(opts, complexity.WithWorkers(cfg.Workers))
	}

	parts := make([]complexity.Report, 0, len(cfg.ChainLengths))
	for _, n := range cfg.ChainLengths {
		start := time.Now()
		calc, err := complexity.New(cfg.Scope, n, opts...)
		if err != nil {
			return fmt.Errorf("%d robots: %w", n, err)
		}
		logger.Printf("%d robots: cache of %d movements built in %s", n, calc.CacheSize(), time.Since(start))

		rep, err := calc.SolveDetailed(input)
		if err != nil {
			return fmt.Errorf("%d robots: %w", n, err)
		}
		logger.Printf("%d robots: total %d", n, rep.Total)
		parts = append(parts, rep)
	}

	return report.Write(stdout, parts, report.Options{Format: format, Humanize: cfg.Humanize})
}

// parseArgs layers command-line options over the configuration file, if any,
// over the defaults.
func parseArgs(args []string) (*config.Config, error) {
	opts, optind, err := getopt.Getopts(args, "c:f:n:ps:w:jHv")
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	for _, opt := range opts {
		if opt.Option == 'c' {
			if cfg, err = config.Load(opt.Value); err != nil {
				return nil, err
			}
		}
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'f':
			cfg.Input = opt.Value
		case 'n':
			n, err := strconv.Atoi(opt.Value)
			if err != nil {
				return nil, fmt.Errorf("-n: %w", err)
			}
			cfg.ChainLengths = []int{n}
		case 'p':
			cfg.ChainLengths = []int{partTwoRobots}
		case 's':
			if cfg.Scope, err = strconv.Atoi(opt.Value); err != nil {
				return nil, fmt.Errorf("-s: %w", err)
			}
		case 'w':
			if cfg.Workers, err = strconv.Atoi(opt.Value); err != nil {
				return nil, fmt.Errorf("-w: %w", err)
			}
		case 'j':
			cfg.Output = "json"
		case 'H':
			cfg.Humanize = true
		case 'v':
			cfg.Verbose = true
		}
	}
	if cfg.Input == "" && optind < len(args) {
		cfg.Input = args[optind]
	}
	if cfg.Input == "" {
		return nil, errNoInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
