package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedExpression = errors.New("malformed expression")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNegativeExponent    = errors.New("negative exponent")
	ErrUnknownOperator     = errors.New("unknown operator")
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// EvalError reports where postfix evaluation failed. Pos is the zero-based
// index of the offending token in the postfix sequence.
type EvalError struct {
	Symbol string
	Pos    int
	Err    error
}

func (e *EvalError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("%s at token %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("%s at token %d (%s)", e.Err, e.Pos, e.Symbol)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func NewEval(err error, symbol string, pos int) *EvalError {
	return &EvalError{Symbol: symbol, Pos: pos, Err: err}
}
