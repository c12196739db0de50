// raz - runs the interactive example programs built on the raz runtime
//
// Usage:
//
//	raz [flags] calc      Four-function calculator
//	raz [flags] guess     Number guessing game
//	raz [flags] pswd      Password generator
//	raz [flags] todo      Todo list
//	raz [flags] greet     Short questionnaire
//	raz version           Print version info
//
// Program output goes to fd 1 and input is read from fd 0 unless -script
// names a recorded input file. Logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/Neumenon/raz/internal/apps"
	"github.com/Neumenon/raz/internal/config"
	"github.com/Neumenon/raz/internal/logging"
	"github.com/Neumenon/raz/raz"
	"github.com/Neumenon/raz/stream"
)

const version = "0.1.0"

// stdio overrides the process console. Nil fields select fd 0 and fd 1.
type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], stdio{err: os.Stderr})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, s stdio) int {
	cfg, rest, err := config.Load(args, s.err)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(s.err)
		return 0
	}
	if err != nil {
		fmt.Fprintf(s.err, "raz: %v\n", err)
		return 2
	}
	if len(rest) != 1 {
		printUsage(s.err)
		return 2
	}

	name := rest[0]
	switch name {
	case "version", "-v", "--version":
		fmt.Fprintf(s.err, "raz %s (float precision %d)\n", version, raz.FloatPrecision)
		return 0
	case "help", "-h", "--help":
		printUsage(s.err)
		return 0
	}
	if _, ok := apps.Lookup(name); !ok {
		fmt.Fprintf(s.err, "raz: unknown program: %s\n", name)
		printUsage(s.err)
		return 2
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(s.err, "raz: %v\n", err)
		return 2
	}
	logger := logging.New(logging.Config{
		Level:   level,
		Format:  cfg.LogFormat,
		Output:  s.err,
		Program: name,
	})

	console, closeInput, err := openConsole(cfg, s)
	if err != nil {
		logger.Error("open console", "error", err)
		return 1
	}
	defer closeInput()
	logger.Debug("console ready",
		"native_io", stream.Native(),
		"script", cfg.Script,
		"echo", console.Echo,
		"seed", cfg.Seed,
	)

	start := time.Now()
	err = apps.Run(ctx, name, apps.NewEnv(console, cfg, logger))
	logging.LogProgramRun(logger, time.Since(start), err)
	if err != nil {
		if errors.Is(err, io.EOF) {
			logger.Warn("input ended before the program finished")
		}
		return 1
	}
	return 0
}

// openConsole wires the program console. Input read from a script or a
// non-terminal stdin is echoed so that the output reads as a session.
func openConsole(cfg *config.Config, s stdio) (*stream.Console, func(), error) {
	console := &stream.Console{}
	closeInput := func() {}

	switch {
	case cfg.Script != "":
		rc, err := stream.OpenScript(cfg.Script)
		if err != nil {
			return nil, nil, err
		}
		console.In = stream.NewReader(rc)
		console.Echo = true
		closeInput = func() { rc.Close() }
	case s.in != nil:
		console.In = stream.NewReader(s.in)
	default:
		console.In = stream.Stdin()
		console.Echo = !isTerminal(os.Stdin)
	}

	if s.out != nil {
		console.Out = stream.NewWriter(s.out)
	} else {
		console.Out = stream.Stdout()
	}
	return console, closeInput, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `raz - interactive programs on the raz runtime

Usage:
  raz [flags] <program>

Programs:
`)
	for _, p := range apps.List() {
		fmt.Fprintf(w, "  %-8s %s\n", p.Name, p.Summary)
	}
	fmt.Fprint(w, `  version  print version info

Flags:
  -seed N            random generator seed (default 12345, env RAZ_SEED)
  -script FILE       read input from FILE; .zst and .gz are decompressed (env RAZ_SCRIPT)
  -config FILE       YAML config file (env RAZ_CONFIG)
  -charset CHARS     password alphabet (env RAZ_PSWD_CHARSET)
  -guess-max N       upper bound of the guessing game (env RAZ_GUESS_MAX)
  -log-level LEVEL   debug, info, warn or error (env RAZ_LOG_LEVEL)
  -log-format FMT    json, text or auto (env RAZ_LOG_FORMAT)

Examples:
  raz calc
  raz -seed 42 guess
  raz -script session.txt.zst todo
`)
}
