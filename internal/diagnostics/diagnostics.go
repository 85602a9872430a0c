package diagnostics

import (
	"fmt"
	"strings"

	"github.com/weftlang/weft/internal/token"
)

// ErrorCode is a stable identifier for a diagnostic kind.
// T-codes are produced by trait composition, R-codes by artifact resolution.
type ErrorCode string

const (
	// ErrT001 — a trait declares a supertype that is not itself a trait.
	ErrT001 ErrorCode = "T001"
	// ErrT002 — a trait's helper companion could not be resolved; the
	// trait's contribution to the composite is skipped.
	ErrT002 ErrorCode = "T002"
	// ErrT003 — a field-helper accessor does not match the shape its
	// name promises (for example a setter with no value parameter).
	ErrT003 ErrorCode = "T003"
	// ErrT004 — a field-helper setter has no paired getter, so no backing
	// field exists for its body to assign into.
	ErrT004 ErrorCode = "T004"
	// ErrR001 — a companion artifact was found but could not be decoded.
	ErrR001 ErrorCode = "R001"
)

var baseMessages = map[ErrorCode]string{
	ErrT001: "a trait can only inherit from another trait",
	ErrT002: "trait helper unavailable",
	ErrT003: "malformed field-helper accessor",
	ErrT004: "field-helper setter has no matching getter",
	ErrR001: "invalid companion artifact",
}

// DiagnosticError is a single coded diagnostic attributed to a source token.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

// NewError builds a DiagnosticError from a code, the token to attribute it
// to, and optional detail values appended to the code's base message.
func NewError(code ErrorCode, tok token.Token, details ...interface{}) *DiagnosticError {
	msg := baseMessages[code]
	if msg == "" {
		msg = string(code)
	}
	if len(details) > 0 {
		parts := make([]string, len(details))
		for i, d := range details {
			parts[i] = fmt.Sprintf("%v", d)
		}
		msg = msg + ": " + strings.Join(parts, " ")
	}
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

func (e *DiagnosticError) Error() string {
	if e.Token.Pos() {
		return fmt.Sprintf("[%s] %s (line %d, column %d)", e.Code, e.Message, e.Token.Line, e.Token.Column)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
