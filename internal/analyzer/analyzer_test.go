package analyzer

import (
	"strings"
	"testing"

	"github.com/funvibe/stlc/internal/ast"
	"github.com/funvibe/stlc/internal/diagnostics"
	"github.com/funvibe/stlc/internal/lexer"
	"github.com/funvibe/stlc/internal/parser"
	"github.com/funvibe/stlc/internal/pipeline"
	"github.com/funvibe/stlc/internal/typesystem"
)

// analyzeSource lexes, parses, then type-checks the input.
func analyzeSource(input string) *pipeline.PipelineContext {
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	return (&SemanticAnalyzerProcessor{}).Process(ctx)
}

// expectAnalyzerErrorContains asserts an error with the given code whose message contains substr.
func expectAnalyzerErrorContains(t *testing.T, input string, code diagnostics.ErrorCode, substr string) *diagnostics.DiagnosticError {
	t.Helper()
	ctx := analyzeSource(input)
	if len(ctx.Errors) != 1 {
		t.Fatalf("expected one error, got %v\ninput: %s", ctx.Errors, input)
	}
	e := ctx.Errors[0]
	if e.Code != code {
		t.Fatalf("expected error %s, got: %s\ninput: %s", code, e.Error(), input)
	}
	if !strings.Contains(e.Error(), substr) {
		t.Errorf("expected error message to contain %q, got: %s", substr, e.Error())
	}
	return e
}

func expectType(t *testing.T, input, want string) {
	t.Helper()
	ctx := analyzeSource(input)
	if ctx.Failed() {
		t.Fatalf("unexpected errors for %s: %v", input, ctx.Errors)
	}
	if got := ctx.Type.String(); got != want {
		t.Errorf("%s : %s, want %s", input, got, want)
	}
}

func TestTypes(t *testing.T) {
	expectType(t, `(\x:bool.x) true`, "bool")
	expectType(t, "if true then false else true", "bool")
	expectType(t, `\x:bool->bool.\y:bool.x y`, "(bool -> bool) -> bool -> bool")
	expectType(t, `\x:bool.x`, "bool -> bool")
	expectType(t, `\f:bool -> bool -> bool.f true`, "(bool -> bool -> bool) -> bool -> bool")
	expectType(t, `\x:bool.\x:bool -> bool.x`, "bool -> (bool -> bool) -> bool -> bool")
	expectType(t, `if true then \x:bool.x else \y:bool.false`, "bool -> bool")
}

func TestUnboundVariable(t *testing.T) {
	e := expectAnalyzerErrorContains(t, `\x:bool.y`, diagnostics.ErrA001, "unbound variable y")
	if e.Token.Column != 9 {
		t.Errorf("column = %d, want 9", e.Token.Column)
	}
	// A binder is out of scope once its abstraction ends.
	expectAnalyzerErrorContains(t, `(\x:bool.x) x`, diagnostics.ErrA001, "unbound variable x")
}

func TestNotAFunction(t *testing.T) {
	expectAnalyzerErrorContains(t, "true false", diagnostics.ErrA002, "cannot apply true of type bool")
	expectAnalyzerErrorContains(t, `\x:bool.x x`, diagnostics.ErrA002, "cannot apply x")
}

// The function position is checked before the argument is typed, so a bad
// argument never hides a non-function head.
func TestNotAFunctionBeforeArgument(t *testing.T) {
	e := expectAnalyzerErrorContains(t, "true y", diagnostics.ErrA002, "cannot apply true of type bool")
	if e.Token.Column != 1 {
		t.Errorf("column = %d, want 1", e.Token.Column)
	}
	expectAnalyzerErrorContains(t, `true ((\x:bool.x) (\y:bool.y))`, diagnostics.ErrA002, "cannot apply true")
	expectAnalyzerErrorContains(t, `false (if \x:bool.x then true else false)`, diagnostics.ErrA002, "cannot apply false")
}

func TestArgumentTypeMismatch(t *testing.T) {
	e := expectAnalyzerErrorContains(t, `(\x:bool.x) (\y:bool.y)`, diagnostics.ErrA003,
		`argument \y:bool.y has type bool -> bool, but \x:bool.x expects bool`)
	if e.Token.Column != 14 {
		t.Errorf("column = %d, want 14", e.Token.Column)
	}
	expectAnalyzerErrorContains(t, `(\f:bool -> bool.f) true`, diagnostics.ErrA003, "expects bool -> bool")
}

func TestConditionNotBoolean(t *testing.T) {
	expectAnalyzerErrorContains(t, `if \x:bool.x then true else false`, diagnostics.ErrA004,
		`condition \x:bool.x has type bool -> bool, expected bool`)
}

func TestBranchTypeMismatch(t *testing.T) {
	expectAnalyzerErrorContains(t, `if true then true else \x:bool.x`, diagnostics.ErrA005,
		"different types: bool and bool -> bool")
}

func TestSkipTypeCheck(t *testing.T) {
	ctx := &pipeline.PipelineContext{SourceCode: "true false", SkipTypeCheck: true}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	ctx = (&SemanticAnalyzerProcessor{}).Process(ctx)
	if ctx.Failed() || ctx.Type != nil {
		t.Errorf("type check should be skipped, got type %v errors %v", ctx.Type, ctx.Errors)
	}
}

func TestContextRestoredOnSuccess(t *testing.T) {
	ctx := typesystem.NewContext()
	ctx.Bind("x", typesystem.Func(typesystem.Bool, typesystem.Bool))

	term, err := parser.ParseString(`\x:bool.x`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := TypeOf(term, ctx); err != nil {
		t.Fatal(err)
	}
	if ty, _ := ctx.Lookup("x"); !typesystem.Equal(ty, typesystem.Func(typesystem.Bool, typesystem.Bool)) {
		t.Errorf("outer binding of x replaced by %v", ty)
	}
	if ctx.Len() != 1 {
		t.Errorf("context has %d bindings, want 1", ctx.Len())
	}
}

// A failure deep inside shadowing binders must not leak bindings.
func TestContextRestoredOnFailure(t *testing.T) {
	ctx := typesystem.NewContext()
	ctx.Bind("x", typesystem.Bool)

	term, err := parser.ParseString(`\x:bool -> bool.\y:bool.\x:bool.x y z`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := TypeOf(term, ctx); !diagnostics.Is(err, diagnostics.ErrA002) {
		t.Fatalf("expected NotAFunction, got %v", err)
	}
	if ty, _ := ctx.Lookup("x"); !typesystem.Equal(ty, typesystem.Bool) {
		t.Errorf("x is %v after the failure, want bool", ty)
	}
	if _, ok := ctx.Lookup("y"); ok {
		t.Error("y leaked out of its abstraction")
	}
}

// Sibling subtrees see the same outer context.
func TestSiblingScopes(t *testing.T) {
	term := ast.App(
		ast.Lam("f", typesystem.Func(typesystem.Bool, typesystem.Bool), ast.Var("f")),
		ast.Lam("x", typesystem.Bool, ast.Var("x")),
	)
	ty, err := Check(term)
	if err != nil {
		t.Fatal(err)
	}
	if ty.String() != "bool -> bool" {
		t.Errorf("type = %s", ty)
	}

	leaky := ast.If(ast.App(ast.Lam("y", typesystem.Bool, ast.Var("y")), ast.True()), ast.Var("y"), ast.False())
	if _, err := Check(leaky); !diagnostics.Is(err, diagnostics.ErrA001) {
		t.Errorf("y must not be visible in a sibling branch, got %v", err)
	}
}

func TestNilContext(t *testing.T) {
	if _, err := TypeOf(ast.Var("x"), nil); !diagnostics.Is(err, diagnostics.ErrA001) {
		t.Errorf("expected UnboundVariable, got %v", err)
	}
}
