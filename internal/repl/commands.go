package repl

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/funvibe/stlc/internal/config"
	"github.com/funvibe/stlc/internal/evaluator"
)

type command struct {
	names []string
	usage string
	help  string
	run   func(s *Session, ctx context.Context, arg string, pos Position) (quit bool, err error)
}

var commands []command

func init() {
	commands = []command{
		{
			names: []string{config.CmdHelp},
			usage: config.CmdHelp,
			help:  "list commands",
			run:   (*Session).cmdHelp,
		},
		{
			names: []string{config.CmdQuit, config.CmdQuitAbbr},
			usage: config.CmdQuit,
			help:  "leave the shell",
			run: func(*Session, context.Context, string, Position) (bool, error) {
				return true, nil
			},
		},
		{
			names: []string{config.CmdType},
			usage: config.CmdType + " TERM",
			help:  "print the type of TERM without evaluating it",
			run:   (*Session).cmdType,
		},
		{
			names: []string{config.CmdEval},
			usage: config.CmdEval + " TERM",
			help:  "evaluate TERM without type checking",
			run:   (*Session).cmdEval,
		},
		{
			names: []string{config.CmdStrategy},
			usage: config.CmdStrategy + " [cbv|cbn]",
			help:  "show or set the evaluation strategy",
			run:   (*Session).cmdStrategy,
		},
		{
			names: []string{config.CmdTrace},
			usage: config.CmdTrace + " [on|off]",
			help:  "show or set reduction tracing",
			run:   (*Session).cmdTrace,
		},
		{
			names: []string{config.CmdSteps},
			usage: config.CmdSteps + " [N]",
			help:  "show or set the step bound (0 for none)",
			run:   (*Session).cmdSteps,
		},
	}
}

func lookupCommand(name string) (command, bool) {
	return lo.Find(commands, func(c command) bool { return lo.Contains(c.names, name) })
}

// CommandNames lists every command spelling, sorted.
func CommandNames() []string {
	names := lo.FlatMap(commands, func(c command, _ int) []string { return c.names })
	slices.Sort(names)
	return names
}

func (s *Session) cmdHelp(_ context.Context, _ string, _ Position) (bool, error) {
	width := lo.Max(lo.Map(commands, func(c command, _ int) int { return len(c.usage) }))
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-*s  %s\n", width, c.usage, c.help)
	}
	fmt.Fprintln(s.out, "Any other line is a term to type check and evaluate.")
	return false, nil
}

func (s *Session) cmdType(ctx context.Context, arg string, pos Position) (bool, error) {
	if arg == "" {
		return false, fmt.Errorf("usage: %s TERM", config.CmdType)
	}
	return false, s.typeLine(ctx, arg, pos)
}

func (s *Session) cmdEval(ctx context.Context, arg string, pos Position) (bool, error) {
	if arg == "" {
		return false, fmt.Errorf("usage: %s TERM", config.CmdEval)
	}
	s.evalLine(ctx, arg, pos, false)
	return false, nil
}

func (s *Session) cmdStrategy(_ context.Context, arg string, _ Position) (bool, error) {
	if arg != "" {
		strategy, err := evaluator.ParseStrategy(arg)
		if err != nil {
			return false, err
		}
		s.strategy = strategy
	}
	fmt.Fprintf(s.out, "strategy: %s\n", s.strategy)
	return false, nil
}

func (s *Session) cmdTrace(_ context.Context, arg string, _ Position) (bool, error) {
	switch arg {
	case "":
	case "on":
		s.trace = true
	case "off":
		s.trace = false
	default:
		return false, fmt.Errorf("usage: %s [on|off]", config.CmdTrace)
	}
	fmt.Fprintf(s.out, "trace: %s\n", lo.Ternary(s.trace, "on", "off"))
	return false, nil
}

func (s *Session) cmdSteps(_ context.Context, arg string, _ Position) (bool, error) {
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return false, fmt.Errorf("usage: %s [N] with N >= 0", config.CmdSteps)
		}
		s.maxSteps = n
	}
	if s.maxSteps == 0 {
		fmt.Fprintln(s.out, "steps: unbounded")
	} else {
		fmt.Fprintf(s.out, "steps: %d\n", s.maxSteps)
	}
	return false, nil
}
