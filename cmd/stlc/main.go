package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/funvibe/stlc/internal/config"
	"github.com/funvibe/stlc/internal/evaluator"
	"github.com/funvibe/stlc/internal/repl"
)

const usage = `Usage: stlc [flags] [FILE]

With no FILE, stlc reads terms from standard input, one per line. On a
terminal this starts the interactive shell.

Flags:
`

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if os.Getenv("STLC_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stlc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	strategy := fs.String("strategy", "", "evaluation strategy: cbv or cbn")
	untyped := fs.Bool("untyped", false, "evaluate without type checking")
	maxSteps := fs.Int("max-steps", 0, "reduction bound per term, 0 for none")
	trace := fs.Bool("trace", false, "print every reduction step")
	configPath := fs.String("config", "", "settings file (default: nearest stlc.yaml)")
	verbose := fs.Bool("v", false, "log pipeline stages to stderr")
	expr := fs.String("e", "", "evaluate one term and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 || (*expr != "" && fs.NArg() > 0) {
		fs.Usage()
		return 2
	}

	settings, err := loadSettings(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 2
	}

	// Flags given explicitly win over the settings file.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			s, err := evaluator.ParseStrategy(*strategy)
			if err != nil {
				flagErr = err
				return
			}
			settings.Strategy = s.Short()
		case "untyped":
			settings.SetTypeChecking(!*untyped)
		case "max-steps":
			switch {
			case *maxSteps < 0:
				flagErr = fmt.Errorf("-max-steps %d: must not be negative", *maxSteps)
			case *maxSteps == 0:
				settings.MaxSteps = config.UnboundedSteps
			default:
				settings.MaxSteps = *maxSteps
			}
		case "trace":
			settings.Trace = *trace
		case "v":
			settings.Verbose = *verbose
		}
	})
	if flagErr != nil {
		fmt.Fprintf(stderr, "Error: %s\n", flagErr)
		return 2
	}

	session, err := repl.New(settings, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 2
	}
	if settings.Verbose {
		session.SetLogger(stderr)
	}

	ctx := context.Background()
	switch {
	case *expr != "":
		session.HandleLine(ctx, *expr, repl.Position{})

	case fs.NArg() == 1:
		path := fs.Arg(0)
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return 1
		}
		defer f.Close()
		if err := session.RunScript(ctx, path, f); err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return 1
		}

	default:
		if f, ok := stdin.(*os.File); ok && repl.IsInteractive(f) {
			if err := session.Run(ctx, repl.NewLineReader(f, stdout)); err != nil {
				fmt.Fprintf(stderr, "Error: %s\n", err)
				return 1
			}
			return 0
		}
		if err := session.RunScript(ctx, "<stdin>", stdin); err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return 1
		}
	}

	if session.Failures() > 0 {
		return 1
	}
	return 0
}

// loadSettings reads path, or the nearest settings file above the working
// directory when path is empty. No file at all means the defaults.
func loadSettings(path string) (*config.Settings, error) {
	if path == "" {
		found, err := config.FindSettings(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return config.Default(), nil
		}
		path = found
	}
	return config.LoadSettings(path)
}
