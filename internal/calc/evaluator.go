package calc

import (
	"log/slog"

	"github.com/DjordjeVuckovic/rpncalc/internal/apperr"
	"github.com/DjordjeVuckovic/rpncalc/internal/container"
	"github.com/DjordjeVuckovic/rpncalc/internal/token"
	"github.com/DjordjeVuckovic/rpncalc/internal/types/operator"
)

// Evaluate consumes postfix and returns the value it denotes. The queue is
// always drained, including when an error is returned.
//
// Errors wrap one of apperr.ErrMalformedExpression, apperr.ErrDivisionByZero,
// apperr.ErrNegativeExponent or apperr.ErrUnknownOperator in an *apperr.EvalError.
// An operator the evaluator cannot apply is logged and aborts the whole
// evaluation; it never collapses to a zero sub-result. Convert cannot emit
// such a token, so it only arises from a hand-built queue.
//
// Diagnostics go to slog.Default(). Calculator.Evaluate uses its own logger.
func Evaluate(postfix *container.Queue[token.Token]) (int64, error) {
	return evaluate(postfix, slog.Default())
}

func evaluate(postfix *container.Queue[token.Token], logger *slog.Logger) (int64, error) {
	operands := container.NewStack[int64]()
	defer operands.Destroy()
	defer postfix.Destroy()

	pos := 0
	for ; ; pos++ {
		tok, ok := postfix.Dequeue()
		if !ok {
			break
		}

		if tok.IsNumber() {
			operands.Push(tok.Value)
			continue
		}

		op2, ok2 := operands.Pop()
		op1, ok1 := operands.Pop()
		if !ok1 || !ok2 {
			return 0, apperr.NewEval(apperr.ErrMalformedExpression, tok.String(), pos)
		}

		v, err := apply(tok.Op, op1, op2)
		if err != nil {
			if err == apperr.ErrUnknownOperator {
				logger.Warn("bad symbol in postfix sequence", "symbol", tok.String(), "position", pos)
			}
			return 0, apperr.NewEval(err, tok.String(), pos)
		}
		operands.Push(v)
	}

	result, ok := operands.Pop()
	if !ok || !operands.IsEmpty() {
		return 0, apperr.NewEval(apperr.ErrMalformedExpression, "", pos)
	}

	return result, nil
}

func apply(op operator.Operator, a, b int64) (int64, error) {
	switch op {
	case operator.Add:
		return a + b, nil
	case operator.Sub:
		return a - b, nil
	case operator.Mul:
		return a * b, nil
	case operator.Div:
		if b == 0 {
			return 0, apperr.ErrDivisionByZero
		}
		return a / b, nil
	case operator.Mod:
		if b == 0 {
			return 0, apperr.ErrDivisionByZero
		}
		return a % b, nil
	case operator.Pow:
		if b < 0 {
			return 0, apperr.ErrNegativeExponent
		}
		return power(a, b), nil
	default:
		return 0, apperr.ErrUnknownOperator
	}
}

// power computes a^b by repeated squaring. b must be non-negative.
func power(a, b int64) int64 {
	if b == 0 {
		return 1
	}
	root := power(a, b/2)
	if b%2 != 0 {
		return root * root * a
	}
	return root * root
}
