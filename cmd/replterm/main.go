// Package main is the entry point for replterm.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dshills/replterm/internal/app"
	"github.com/dshills/replterm/internal/lineterm"
	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type cliOptions struct {
	app         app.Options
	interactive bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	// Interactive mode owns the screen, so logs only go to a file.
	if !opts.interactive {
		opts.app.LogOutput = os.Stderr
	}

	application, err := app.New(opts.app)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if opts.interactive {
		err = runInteractive(ctx, application)
	} else {
		err = runLine(ctx, application)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		application.Logger().Error("%v", err)
		if opts.app.LogOutput == nil || opts.app.LogFile != "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func runLine(ctx context.Context, application *app.Application) error {
	term := lineterm.New()
	defer term.Close()
	return application.RunLine(ctx, term)
}

func runInteractive(ctx context.Context, application *app.Application) error {
	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	return application.RunInteractive(ctx, term)
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	addScript := func(path string) error {
		if strings.TrimSpace(path) == "" {
			return errors.New("empty script path")
		}
		opts.app.Scripts = append(opts.app.Scripts, path)
		return nil
	}

	flag.StringVar(&opts.app.ConfigPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&opts.app.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.interactive, "interactive", false, "Run the full-screen console instead of a line prompt")
	flag.BoolVar(&opts.interactive, "i", false, "Run the full-screen console (shorthand)")
	flag.Func("script", "Load commands from a Lua file (repeatable)", addScript)
	flag.StringVar(&opts.app.LogFile, "log", "", "Write logs to this file")
	flag.StringVar(&opts.app.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "replterm - multi-window command REPL\n\n")
		fmt.Fprintf(os.Stderr, "Usage: replterm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  replterm                        Line prompt with the demo commands\n")
		fmt.Fprintf(os.Stderr, "  replterm -i                     Full-screen console\n")
		fmt.Fprintf(os.Stderr, "  replterm -script cmds.lua       Add commands from a Lua script\n")
		fmt.Fprintf(os.Stderr, "  replterm -i -log replterm.log   Console with logs in a file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("replterm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.app.LogLevel != "" && !logging.ValidLevel(opts.app.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.app.LogLevel)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %s\n", strings.Join(flag.Args(), " "))
		os.Exit(1)
	}

	return opts
}
