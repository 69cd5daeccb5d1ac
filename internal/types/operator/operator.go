package operator

import (
	"fmt"
)

// Operator is one of the arithmetic symbols recognised by the converter,
// including the two grouping parentheses.
//
// Usage:
//
//	op, ok := operator.Parse('*')
//	op.Precedence() // 2
type Operator byte

const (
	Add    Operator = '+'
	Sub    Operator = '-'
	Mul    Operator = '*'
	Div    Operator = '/'
	Mod    Operator = '%'
	Pow    Operator = '^'
	LParen Operator = '('
	RParen Operator = ')'
)

// Precedence tiers, low to high. Parentheses sit below every binary tier so
// they are never popped by an incoming operator.
const (
	tierGroup = iota
	tierAdditive
	tierMultiplicative
	tierExponent
)

var tiers = map[Operator]int{
	Add:    tierAdditive,
	Sub:    tierAdditive,
	Mul:    tierMultiplicative,
	Div:    tierMultiplicative,
	Mod:    tierMultiplicative,
	Pow:    tierExponent,
	LParen: tierGroup,
	RParen: tierGroup,
}

// Parse maps a single input byte to an Operator.
func Parse(b byte) (Operator, bool) {
	op := Operator(b)
	if _, ok := tiers[op]; !ok {
		return 0, false
	}
	return op, true
}

// String returns the symbol of the operator
func (o Operator) String() string {
	return string(rune(o))
}

// Precedence returns the tier of the operator, or -1 for an unknown symbol.
func (o Operator) Precedence() int {
	p, ok := tiers[o]
	if !ok {
		return -1
	}
	return p
}

func (o Operator) IsParen() bool {
	return o == LParen || o == RParen
}

// IsBinary reports whether the operator takes two operands.
func (o Operator) IsBinary() bool {
	return o.Precedence() > tierGroup
}

// RightAssociative is true only for exponentiation.
func (o Operator) RightAssociative() bool {
	return o == Pow
}

// Pops reports whether top, sitting on the operator stack, must be emitted
// before o is pushed. A parenthesis is never popped here.
func (o Operator) Pops(top Operator) bool {
	if !top.IsBinary() {
		return false
	}
	if top.Precedence() > o.Precedence() {
		return true
	}
	return top.Precedence() == o.Precedence() && !o.RightAssociative()
}

// Validate ensures the operator has a valid value
func (o Operator) Validate() error {
	if _, ok := tiers[o]; !ok {
		return fmt.Errorf("invalid operator: %q", byte(o))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler. Unknown symbols are rejected.
func (o Operator) MarshalText() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return []byte(o.String()), nil
}
