package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/funvibe/stlc/internal/config"
)

func newTestSession(t *testing.T, settings *config.Settings) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	s, err := New(settings, &out, &errOut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s, &out, &errOut
}

func runTranscript(t *testing.T, s *Session, input string) {
	t.Helper()
	if err := s.Run(context.Background(), NewScanReader(strings.NewReader(input), nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScenarios(t *testing.T) {
	s, out, errOut := newTestSession(t, nil)
	runTranscript(t, s, strings.Join([]string{
		`(\x:bool.x) true`,
		"if true then false else true",
		`\x:bool.y`,
		`(\x:bool.x) (\y:bool.y)`,
		`\x:bool->bool.\y:bool.x y`,
	}, "\n"))

	wantOut := "true : bool\n" +
		"false : bool\n" +
		`\x:bool -> bool.(\y:bool.(x y)) : (bool -> bool) -> bool -> bool` + "\n" +
		"\n" + config.GoodbyeMessage + "\n"
	if out.String() != wantOut {
		t.Errorf("stdout:\n%s\nwant:\n%s", out.String(), wantOut)
	}

	errLines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	if len(errLines) != 2 {
		t.Fatalf("expected two errors, got:\n%s", errOut.String())
	}
	if !strings.HasPrefix(errLines[0], "UnboundVariable [A001] at 1:9") {
		t.Errorf("first error: %s", errLines[0])
	}
	if !strings.HasPrefix(errLines[1], "ArgumentTypeMismatch [A003]") {
		t.Errorf("second error: %s", errLines[1])
	}
	if s.Failures() != 2 {
		t.Errorf("failures = %d, want 2", s.Failures())
	}
}

func TestQuitStopsReading(t *testing.T) {
	s, out, _ := newTestSession(t, nil)
	runTranscript(t, s, "true\n:q\nfalse\n")
	if out.String() != "true : bool\n" {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestCommands(t *testing.T) {
	s, out, errOut := newTestSession(t, nil)
	runTranscript(t, s, strings.Join([]string{
		`:type \x:bool.x`,
		":eval true false",
		`:eval (\x:bool.x x) (\y:bool.y)`,
		":strategy cbn",
		`(\x:bool.true) ((\y:bool.y) false)`,
		":strategy",
		":steps 3",
		":steps",
		":trace on",
		`(\x:bool.x) true`,
		":trace off",
		":steps 0",
		":quit",
	}, "\n"))

	want := strings.Join([]string{
		"bool -> bool",
		`\y:bool.y`,
		"strategy: call-by-name",
		"true : bool",
		"strategy: call-by-name",
		"steps: 3",
		"steps: 3",
		"trace: on",
		"true : bool",
		"   1  beta     [1] true",
		"trace: off",
		"steps: unbounded",
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", out.String(), want)
	}
	// :eval skips the type gate, so "true false" gets stuck at run time.
	if !strings.HasPrefix(errOut.String(), "StuckTerm [R001]") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestCommandErrors(t *testing.T) {
	s, _, errOut := newTestSession(t, nil)
	runTranscript(t, s, ":frobnicate\n:strategy lazy\n:trace maybe\n:steps -1\n:type\n:eval\n")
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 errors, got:\n%s", errOut.String())
	}
	if !strings.Contains(lines[0], "unknown command :frobnicate") {
		t.Errorf("line 0: %s", lines[0])
	}
	if !strings.Contains(lines[1], `unknown strategy "lazy"`) {
		t.Errorf("line 1: %s", lines[1])
	}
	if s.Failures() != 6 {
		t.Errorf("failures = %d", s.Failures())
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	s, out, _ := newTestSession(t, nil)
	s.HandleLine(context.Background(), ":help", Position{})
	for _, c := range commands {
		if !strings.Contains(out.String(), c.usage) {
			t.Errorf("help does not mention %s", c.usage)
		}
	}
	names := CommandNames()
	if len(names) != 8 || names[0] != ":eval" {
		t.Errorf("command names = %v", names)
	}
}

func TestStepLimitReported(t *testing.T) {
	settings := config.Default()
	settings.MaxSteps = 10
	settings.SetTypeChecking(false)
	s, out, errOut := newTestSession(t, settings)
	s.HandleLine(context.Background(), `(\x:bool.x x) (\x:bool.x x)`, Position{})
	if !strings.HasPrefix(errOut.String(), "StepLimitExceeded [R002]") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestUntypedOutputHasNoType(t *testing.T) {
	settings := config.Default()
	settings.SetTypeChecking(false)
	s, out, _ := newTestSession(t, settings)
	s.HandleLine(context.Background(), `(\x:bool.x) y`, Position{})
	if out.String() != "y\n" {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestRunScript(t *testing.T) {
	s, out, errOut := newTestSession(t, nil)
	script := "# header\n\ntrue\n  \n(\\x:bool.x) y\n:strategy cbn\nif true then false else true\n"
	if err := s.RunScript(context.Background(), "demo.lam", strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	if out.String() != "true : bool\nstrategy: call-by-name\nfalse : bool\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.HasPrefix(errOut.String(), "UnboundVariable [A001] at demo.lam:5:13: unbound variable y") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if s.Failures() != 1 {
		t.Errorf("failures = %d", s.Failures())
	}
}

func TestLoggerPrefix(t *testing.T) {
	config.IsTestMode = true
	defer func() { config.IsTestMode = false }()

	s, _, _ := newTestSession(t, nil)
	var logs bytes.Buffer
	s.SetLogger(&logs)
	s.HandleLine(context.Background(), "true", Position{})
	if !strings.HasPrefix(logs.String(), "[00000000] stage *lexer.LexerProcessor") {
		t.Errorf("logs = %q", logs.String())
	}
	if !strings.Contains(logs.String(), "0 step(s) under call-by-value") {
		t.Errorf("logs = %q", logs.String())
	}
}

func TestNewRejectsBadStrategy(t *testing.T) {
	settings := config.Default()
	settings.Strategy = "eager"
	if _, err := New(settings, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Error("expected an error")
	}
}

// Errors inside a command argument are reported at their column in the
// full line, not in the argument alone.
func TestCommandArgumentPositions(t *testing.T) {
	s, _, errOut := newTestSession(t, nil)
	script := "true\n:type     \\x:bool.y\n  :type true y\n"
	if err := s.RunScript(context.Background(), "f.lam", strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two errors, got:\n%s", errOut.String())
	}
	if !strings.HasPrefix(lines[0], "UnboundVariable [A001] at f.lam:2:19: unbound variable y") {
		t.Errorf("line 0: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "NotAFunction [A002] at f.lam:3:9:") {
		t.Errorf("line 1: %s", lines[1])
	}

	errOut.Reset()
	s.HandleLine(context.Background(), ":eval  true false", Position{})
	if !strings.HasPrefix(errOut.String(), "StuckTerm [R001] at 1:8:") {
		t.Errorf("stderr = %q", errOut.String())
	}

	// The argument text also occurs inside the command name.
	errOut.Reset()
	s.HandleLine(context.Background(), ":type t", Position{})
	if !strings.HasPrefix(errOut.String(), "UnboundVariable [A001] at 1:7:") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestCompleteCommand(t *testing.T) {
	got := completeCommand(":s")
	if len(got) != 2 || got[0] != ":steps" || got[1] != ":strategy" {
		t.Errorf("completions for :s = %v", got)
	}
	if got := completeCommand(`\x:bool.x`); got != nil {
		t.Errorf("terms should not complete, got %v", got)
	}
}
