package interpreter

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax           = errors.New("syntax error")
	ErrEvaluation       = errors.New("cannot evaluate")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUndefinedLine    = errors.New("undefined line number")
	ErrLoopStack        = errors.New("NEXT without FOR")
	ErrLoopMismatch     = errors.New("does not match FOR")
	ErrReturnStack      = errors.New("RETURN without GOSUB")
	ErrInput            = errors.New("input exhausted")
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
)

// LineError tags a runtime error with the BASIC line number it occurred on.
// The run loop wraps every handler error exactly once.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("error at line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
