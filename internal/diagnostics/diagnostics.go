package diagnostics

import (
	"errors"
	"fmt"

	"github.com/funvibe/stlc/internal/token"
)

type ErrorCode string

const (
	// Scanner
	ErrS001 ErrorCode = "S001" // unscannable character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected token missing
	ErrP003 ErrorCode = "P003" // empty input
	ErrP004 ErrorCode = "P004" // input left after a complete term

	// Type checker
	ErrA001 ErrorCode = "A001" // unbound variable
	ErrA002 ErrorCode = "A002" // applying a non-function
	ErrA003 ErrorCode = "A003" // argument type mismatch
	ErrA004 ErrorCode = "A004" // condition is not bool
	ErrA005 ErrorCode = "A005" // branch type mismatch

	// Evaluator
	ErrR001 ErrorCode = "R001" // stuck term
	ErrR002 ErrorCode = "R002" // step limit exceeded
	ErrR003 ErrorCode = "R003" // evaluation cancelled
	ErrR004 ErrorCode = "R004" // unknown evaluation strategy
)

var kindNames = map[ErrorCode]string{
	ErrS001: "ScanError",
	ErrP001: "UnexpectedToken",
	ErrP002: "ExpectedToken",
	ErrP003: "EmptyInput",
	ErrP004: "TrailingInput",
	ErrA001: "UnboundVariable",
	ErrA002: "NotAFunction",
	ErrA003: "ArgumentTypeMismatch",
	ErrA004: "ConditionNotBoolean",
	ErrA005: "BranchTypeMismatch",
	ErrR001: "StuckTerm",
	ErrR002: "StepLimitExceeded",
	ErrR003: "Cancelled",
	ErrR004: "UnknownStrategy",
}

// Kind returns the taxonomy name of the code, e.g. "UnboundVariable".
func (c ErrorCode) Kind() string {
	if name, ok := kindNames[c]; ok {
		return name
	}
	return "Error"
}

// Stage reports which layer produced errors with this code.
func (c ErrorCode) Stage() string {
	if c == "" {
		return "unknown"
	}
	switch c[0] {
	case 'S':
		return "scan"
	case 'P':
		return "parse"
	case 'A':
		return "type"
	case 'R':
		return "runtime"
	}
	return "unknown"
}

// DiagnosticError is the single error type surfaced by every stage.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string
}

func (e *DiagnosticError) Error() string {
	prefix := fmt.Sprintf("%s [%s]", e.Code.Kind(), e.Code)
	loc := ""
	if e.Token.Line > 0 {
		loc = fmt.Sprintf("%d:%d", e.Token.Line, e.Token.Column)
		if e.File != "" {
			loc = e.File + ":" + loc
		}
	} else if e.File != "" {
		loc = e.File
	}
	if loc != "" {
		return fmt.Sprintf("%s at %s: %s", prefix, loc, e.Message)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// NewError builds a diagnostic. Extra args are applied to msg as format arguments.
func NewError(code ErrorCode, tok token.Token, msg string, args ...interface{}) *DiagnosticError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

// Is reports whether err carries a diagnostic with the given code.
func Is(err error, code ErrorCode) bool {
	var de *DiagnosticError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the diagnostic code from err, or "" when err is not a diagnostic.
func CodeOf(err error) ErrorCode {
	var de *DiagnosticError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
