package token

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/rpncalc/internal/types/operator"
)

type Type int

const (
	NUMBER Type = iota
	OPERATOR
)

func (t Type) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Token is either a non-negative integer literal or an operator symbol.
// Only the field matching Type is meaningful.
type Token struct {
	Type  Type
	Value int64
	Op    operator.Operator
}

func Number(v int64) Token {
	return Token{Type: NUMBER, Value: v}
}

func Op(op operator.Operator) Token {
	return Token{Type: OPERATOR, Op: op}
}

func (t Token) IsNumber() bool {
	return t.Type == NUMBER
}

// String renders numbers in decimal and operators as their symbol.
func (t Token) String() string {
	if t.IsNumber() {
		return strconv.FormatInt(t.Value, 10)
	}
	return t.Op.String()
}

type jsonToken struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// MarshalJSON fails for an operator token holding an unknown symbol.
func (t Token) MarshalJSON() ([]byte, error) {
	if t.IsNumber() {
		return json.Marshal(jsonToken{Type: t.Type.String(), Value: t.Value})
	}
	sym, err := t.Op.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("marshal %s token: %w", t.Type, err)
	}
	return json.Marshal(jsonToken{Type: t.Type.String(), Value: string(sym)})
}
