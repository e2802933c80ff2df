package diagnostics

import (
	"fmt"
	"testing"

	"github.com/funvibe/stlc/internal/token"
)

func TestErrorFormat(t *testing.T) {
	tok := token.Token{Type: token.IDENT, Lexeme: "y", Line: 1, Column: 9}
	tests := []struct {
		err  *DiagnosticError
		want string
	}{
		{NewError(ErrA001, tok, "unbound variable %s", "y"), "UnboundVariable [A001] at 1:9: unbound variable y"},
		{&DiagnosticError{Code: ErrP003, Message: "empty input"}, "EmptyInput [P003]: empty input"},
		{&DiagnosticError{Code: ErrR001, Token: tok, Message: "stuck", File: "a.lam"}, "StuckTerm [R001] at a.lam:1:9: stuck"},
		{&DiagnosticError{Code: ErrR002, Message: "limit", File: "a.lam"}, "StepLimitExceeded [R002] at a.lam: limit"},
		// Without args the message is used verbatim.
		{NewError(ErrS001, tok, "100% wrong"), "ScanError [S001] at 1:9: 100% wrong"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindAndStage(t *testing.T) {
	tests := []struct {
		code        ErrorCode
		kind, stage string
	}{
		{ErrS001, "ScanError", "scan"},
		{ErrP004, "TrailingInput", "parse"},
		{ErrA005, "BranchTypeMismatch", "type"},
		{ErrR003, "Cancelled", "runtime"},
		{ErrR004, "UnknownStrategy", "runtime"},
		{ErrorCode("X999"), "Error", "unknown"},
	}
	for _, tt := range tests {
		if tt.code.Kind() != tt.kind || tt.code.Stage() != tt.stage {
			t.Errorf("%s: kind %s stage %s", tt.code, tt.code.Kind(), tt.code.Stage())
		}
	}
}

func TestIsAndCodeOf(t *testing.T) {
	err := fmt.Errorf("line 3: %w", NewError(ErrA002, token.Token{}, "not a function"))
	if !Is(err, ErrA002) || Is(err, ErrA003) {
		t.Error("Is should see through wrapping")
	}
	if CodeOf(err) != ErrA002 || CodeOf(fmt.Errorf("plain")) != "" {
		t.Error("CodeOf is wrong")
	}
}
