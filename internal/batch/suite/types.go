package suite

import (
	"fmt"

	"github.com/DjordjeVuckovic/rpncalc/internal/apperr"
)

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case is one expression to evaluate. At most one of Expect and ExpectError
// is set; with neither, the case only has to evaluate without error.
type Case struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description,omitempty"`
	Expression  string      `yaml:"expression"`
	Expect      *int64      `yaml:"expect,omitempty"`
	ExpectError ExpectError `yaml:"expect_error,omitempty"`
}

type ExpectError string

const (
	ExpectMalformed        ExpectError = "malformed_expression"
	ExpectDivisionByZero   ExpectError = "division_by_zero"
	ExpectNegativeExponent ExpectError = "negative_exponent"
	ExpectUnknownOperator  ExpectError = "unknown_operator"
)

var expectedErrors = map[ExpectError]error{
	ExpectMalformed:        apperr.ErrMalformedExpression,
	ExpectDivisionByZero:   apperr.ErrDivisionByZero,
	ExpectNegativeExponent: apperr.ErrNegativeExponent,
	ExpectUnknownOperator:  apperr.ErrUnknownOperator,
}

// Sentinel returns the error the case expects, or nil when none is expected.
func (e ExpectError) Sentinel() error {
	return expectedErrors[e]
}

func (e ExpectError) Validate() error {
	if e == "" {
		return nil
	}
	if _, ok := expectedErrors[e]; !ok {
		return fmt.Errorf("unknown expect_error %q", string(e))
	}
	return nil
}
