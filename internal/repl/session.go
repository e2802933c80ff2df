// Package repl is the interactive shell and the line-by-line batch runner.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	"github.com/funvibe/stlc/internal/analyzer"
	"github.com/funvibe/stlc/internal/config"
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/evaluator"
	"github.com/funvibe/stlc/internal/lexer"
	"github.com/funvibe/stlc/internal/parser"
	"github.com/funvibe/stlc/internal/pipeline"
	"github.com/funvibe/stlc/internal/prettyprinter"
)

// Session holds the mutable shell state: strategy, type gate, step bound
// and tracing. One Session serves one user or one input file.
type Session struct {
	ID string

	strategy      evaluator.Strategy
	typeCheck     bool
	maxSteps      int
	trace         bool
	traceCapacity int
	prompt        string

	out    io.Writer
	errOut io.Writer
	logger *log.Logger

	failures int
}

// New builds a session from settings. A nil settings means config.Default().
func New(settings *config.Settings, out, errOut io.Writer) (*Session, error) {
	if settings == nil {
		settings = config.Default()
	}
	strategy, err := evaluator.ParseStrategy(settings.Strategy)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:            newSessionID(),
		strategy:      strategy,
		typeCheck:     settings.TypeChecking(),
		maxSteps:      settings.StepLimit(),
		trace:         settings.Trace,
		traceCapacity: settings.TraceCapacity,
		prompt:        settings.Prompt,
		out:           out,
		errOut:        errOut,
	}
	s.SetLogger(nil)
	return s, nil
}

func newSessionID() string {
	if config.IsTestMode {
		return uuid.Nil.String()
	}
	return uuid.NewString()
}

// SetLogger routes stage logging to w, prefixed with the session id.
// A nil w discards it.
func (s *Session) SetLogger(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.logger = log.New(w, "["+s.ID[:8]+"] ", 0)
}

// Failures counts the inputs that ended in an error.
func (s *Session) Failures() int { return s.failures }

// Run reads lines from reader until end of input or :quit.
func (s *Session) Run(ctx context.Context, reader LineReader) error {
	defer reader.Close()
	s.logger.Printf("session started, strategy %s", s.strategy)
	for {
		line, err := reader.Prompt(s.prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, config.GoodbyeMessage)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		reader.AppendHistory(line)
		if quit := s.HandleLine(ctx, line, Position{}); quit {
			return nil
		}
	}
}

// RunScript treats every line of r as its own input. Blank lines and
// lines starting with '#' are skipped. name labels error positions.
func (s *Session) RunScript(ctx context.Context, name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if quit := s.HandleLine(ctx, line, Position{File: name, Line: lineNo}); quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

// Position locates a line within a script. The zero value means
// interactive input. Column is the number of runes before the text being
// parsed, such as the command name in front of a :type argument.
type Position struct {
	File   string
	Line   int
	Column int
}

// HandleLine runs one command or term. It reports whether the session
// should end.
func (s *Session) HandleLine(ctx context.Context, line string, pos Position) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		name, rest, _ := strings.Cut(trimmed, " ")
		cmd, ok := lookupCommand(name)
		if !ok {
			s.fail(fmt.Errorf("unknown command %s (try %s)", name, config.CmdHelp))
			return false
		}
		arg := strings.TrimSpace(rest)
		if arg != "" {
			// arg ends where the line's text ends.
			end := len(strings.TrimRightFunc(line, unicode.IsSpace))
			pos.Column += utf8.RuneCountInString(line[:end-len(arg)])
		}
		quit, err := cmd.run(s, ctx, arg, pos)
		if err != nil {
			s.fail(err)
		}
		return quit
	}
	s.evalLine(ctx, line, pos, s.typeCheck)
	return false
}

func (s *Session) fail(err error) {
	s.failures++
	fmt.Fprintln(s.errOut, err)
}

// run sends src through the stages. A SIGINT during evaluation cancels it.
func (s *Session) run(ctx context.Context, src string, pos Position, stages ...pipeline.Processor) *pipeline.PipelineContext {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	pctx := pipeline.NewPipelineContext(src)
	pctx.Context = ctx
	pctx.FilePath = pos.File
	pctx.Strategy = s.strategy.Short()
	pctx.SkipTypeCheck = !s.typeCheck
	pctx.MaxSteps = s.maxSteps
	if s.trace {
		pctx.Trace = evaluator.NewTrace(s.traceCapacity)
	}

	pctx = pipeline.New(stages...).WithLogger(s.logger).Run(pctx)
	for _, err := range pctx.Errors {
		if err.Token.Line == 0 {
			continue
		}
		if err.Token.Line == 1 {
			err.Token.Column += pos.Column
		}
		if pos.Line > 0 {
			err.Token.Line += pos.Line - 1
		}
	}
	return pctx
}

func (s *Session) evalLine(ctx context.Context, src string, pos Position, typed bool) {
	saved := s.typeCheck
	s.typeCheck = typed
	pctx := s.run(ctx, src, pos,
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
		&evaluator.EvaluatorProcessor{},
	)
	s.typeCheck = saved

	if err := pctx.FirstError(); err != nil {
		s.fail(err)
		if diagnostics.Is(err, diagnostics.ErrR002) || diagnostics.Is(err, diagnostics.ErrR003) {
			s.printTrace(pctx)
		}
		return
	}
	s.logger.Printf("%d step(s) under %s", pctx.Steps, s.strategy)
	if pctx.Type != nil {
		fmt.Fprintf(s.out, "%s : %s\n", prettyprinter.Term(pctx.Result), prettyprinter.Type(pctx.Type))
	} else {
		fmt.Fprintln(s.out, prettyprinter.Term(pctx.Result))
	}
	s.printTrace(pctx)
}

func (s *Session) printTrace(pctx *pipeline.PipelineContext) {
	trace, ok := pctx.Trace.(*evaluator.Trace)
	if !ok {
		return
	}
	for _, event := range trace.Snapshot() {
		fmt.Fprintln(s.out, event)
	}
	if dropped := trace.Dropped(); dropped > 0 {
		fmt.Fprintf(s.out, "  ... %d more step(s)\n", dropped)
	}
}

func (s *Session) typeLine(ctx context.Context, src string, pos Position) error {
	saved := s.typeCheck
	s.typeCheck = true
	pctx := s.run(ctx, src, pos,
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
	)
	s.typeCheck = saved
	if err := pctx.FirstError(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, prettyprinter.Type(pctx.Type))
	return nil
}
