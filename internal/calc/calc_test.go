package calc

import (
	"bytes"
	"log/slog"
	"math"
	"strconv"
	"testing"

	"github.com/DjordjeVuckovic/rpncalc/internal/apperr"
	"github.com/DjordjeVuckovic/rpncalc/internal/container"
	"github.com/DjordjeVuckovic/rpncalc/internal/token"
	"github.com/DjordjeVuckovic/rpncalc/internal/types/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "precedence", input: "3+4*2", expected: "3 4 2 * +"},
		{name: "parentheses", input: "(3+4)*2", expected: "3 4 + 2 *"},
		{name: "left associative subtraction", input: "8-4-2", expected: "8 4 - 2 -"},
		{name: "right associative power", input: "2^3^2", expected: "2 3 2 ^ ^"},
		{name: "power before multiply", input: "2^3*2", expected: "2 3 ^ 2 *"},
		{name: "multiply then power", input: "2*3^2", expected: "2 3 2 ^ *"},
		{name: "modulo is multiplicative", input: "100%7*3", expected: "100 7 % 3 *"},
		{name: "nested groups", input: "2*((3+4)^2)", expected: "2 3 4 + 2 ^ *"},
		{name: "multi digit", input: "12+345", expected: "12 345 +"},
		{name: "leading zeros", input: "007", expected: "7"},
		{name: "other characters ignored", input: "3 + 4", expected: "3 4 +"},
		{name: "unmatched open paren dropped", input: "(3+4", expected: "3 4 +"},
		{name: "unmatched close paren", input: "3+4)", expected: "3 4 +"},
		{name: "empty", input: "", expected: "(empty queue)"},
		{name: "no tokens", input: "abc", expected: "(empty queue)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Convert(tt.input)
			assert.Equal(t, tt.expected, Format(q))
		})
	}
}

func TestConvert_MultiDigitTokens(t *testing.T) {
	q := Convert("12+3")

	assert.Equal(t, []token.Token{
		token.Number(12),
		token.Number(3),
		token.Op(operator.Add),
	}, q.Items())
}

func TestConvert_ParenthesesNeverEmitted(t *testing.T) {
	for _, input := range []string{"((1+2))", "(1", "1)", ")(", "((((("} {
		for _, tok := range Convert(input).Items() {
			if !tok.IsNumber() {
				assert.False(t, tok.Op.IsParen(), "input %q emitted %s", input, tok)
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{input: "3+4*2", expected: 11},
		{input: "(3+4)*2", expected: 14},
		{input: "8-4-2", expected: 2},
		{input: "8-(4-2)", expected: 6},
		{input: "2^3^2", expected: 512},
		{input: "(2^3)^2", expected: 64},
		{input: "10%3", expected: 1},
		{input: "10/3", expected: 3},
		{input: "20/4/5", expected: 1},
		{input: "2+3*4-5", expected: 9},
		{input: "2*(3+4)^2", expected: 98},
		{input: "100%7*3", expected: 6},
		{input: "0-7/2", expected: -3},
		{input: "(0-7)%3", expected: -1},
		{input: "2^0", expected: 1},
		{input: "0^0", expected: 1},
		{input: "(0-2)^3", expected: -8},
		{input: "2^62", expected: 1 << 62},
		{input: "9223372036854775807+1", expected: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(Convert(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluate_Literals(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 10, 42, 65535, 1 << 40, math.MaxInt64} {
		t.Run(strconv.FormatInt(n, 10), func(t *testing.T) {
			q := Convert(strconv.FormatInt(n, 10))
			require.Equal(t, []token.Token{token.Number(n)}, q.Items())

			got, err := Evaluate(q)
			require.NoError(t, err)
			assert.Equal(t, n, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "division by zero", input: "5/0", wantErr: apperr.ErrDivisionByZero},
		{name: "modulo by zero", input: "5%0", wantErr: apperr.ErrDivisionByZero},
		{name: "zero from sub expression", input: "5/(3-3)", wantErr: apperr.ErrDivisionByZero},
		{name: "negative exponent", input: "2^(0-1)", wantErr: apperr.ErrNegativeExponent},
		{name: "empty", input: "", wantErr: apperr.ErrMalformedExpression},
		{name: "trailing operator", input: "3+", wantErr: apperr.ErrMalformedExpression},
		{name: "lone operator", input: "*", wantErr: apperr.ErrMalformedExpression},
		{name: "missing operator", input: "3 4", wantErr: apperr.ErrMalformedExpression},
		{name: "unary minus", input: "-3", wantErr: apperr.ErrMalformedExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(Convert(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var ee *apperr.EvalError
			assert.ErrorAs(t, err, &ee)
		})
	}
}

func TestEvaluate_ErrorPosition(t *testing.T) {
	_, err := Evaluate(Convert("1+5/0"))

	var ee *apperr.EvalError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "/", ee.Symbol)
	assert.Equal(t, 3, ee.Pos)
}

func TestEvaluate_UnknownOperatorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	q := container.NewQueue[token.Token]()
	q.Enqueue(token.Number(1))
	q.Enqueue(token.Number(2))
	q.Enqueue(token.Op(operator.LParen))

	_, err := Evaluate(q)
	assert.ErrorIs(t, err, apperr.ErrUnknownOperator)
	assert.Contains(t, buf.String(), "bad symbol")
	assert.True(t, q.IsEmpty())
}

func TestCalculator_EvaluateUsesInjectedLogger(t *testing.T) {
	var injected, global bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&global, nil)))
	defer slog.SetDefault(prev)

	c := New(WithLogger(slog.New(slog.NewTextHandler(&injected, nil))))

	q := container.NewQueue[token.Token]()
	q.Enqueue(token.Number(4))
	q.Enqueue(token.Number(2))
	q.Enqueue(token.Op(operator.RParen))

	_, err := c.Evaluate(q)
	require.ErrorIs(t, err, apperr.ErrUnknownOperator)

	var ee *apperr.EvalError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ")", ee.Symbol)
	assert.Equal(t, 2, ee.Pos)

	assert.Contains(t, injected.String(), "bad symbol")
	assert.Contains(t, injected.String(), "position=2")
	assert.NotContains(t, global.String(), "bad symbol")
	assert.True(t, q.IsEmpty())
}

func TestEvaluate_DrainsQueue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		q := Convert("1+2*3")
		_, err := Evaluate(q)
		require.NoError(t, err)
		assert.True(t, q.IsEmpty())

		q.Destroy()
		assert.True(t, q.IsEmpty())
	})

	t.Run("failure", func(t *testing.T) {
		q := Convert("1/0+2")
		_, err := Evaluate(q)
		require.Error(t, err)
		assert.True(t, q.IsEmpty())
	})
}

func TestPower(t *testing.T) {
	assert.Equal(t, int64(1), power(5, 0))
	assert.Equal(t, int64(1024), power(2, 10))
	assert.Equal(t, int64(2187), power(3, 7))
	assert.Equal(t, int64(-8), power(-2, 3))
	assert.Equal(t, int64(16), power(-2, 4))
	assert.Equal(t, int64(0), power(0, 5))
	assert.Equal(t, int64(1), power(1, math.MaxInt64))
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "(empty queue)", FormatTokens(nil))
	assert.Equal(t, "1 2 +", FormatTokens([]token.Token{token.Number(1), token.Number(2), token.Op(operator.Add)}))
}

func TestCalculator_Run(t *testing.T) {
	c := New()

	res, err := c.Run("(3+4)*2")
	require.NoError(t, err)
	assert.Equal(t, "(3+4)*2", res.Expression)
	assert.Equal(t, "3 4 + 2 *", res.Rendered)
	assert.Len(t, res.Postfix, 5)
	assert.Equal(t, int64(14), res.Value)

	res, err = c.Run("5/0")
	assert.ErrorIs(t, err, apperr.ErrDivisionByZero)
	require.NotNil(t, res)
	assert.Equal(t, "5 0 /", res.Rendered)
	assert.Zero(t, res.Value)
}

func TestCalculator_ConvertOnly(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	res := c.ConvertOnly("1+2")
	assert.Equal(t, "1 2 +", res.Rendered)
	assert.Zero(t, res.Value)

	_, err := c.Run("1+2")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "expression converted")
}
