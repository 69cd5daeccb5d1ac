package calc

import (
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/rpncalc/internal/container"
	"github.com/DjordjeVuckovic/rpncalc/internal/token"
	"github.com/DjordjeVuckovic/rpncalc/internal/types/operator"
)

const emptyQueue = "(empty queue)"

// Convert turns an infix expression into postfix order using the
// shunting-yard algorithm. It never fails: characters that are neither
// digits nor operators are skipped, and unbalanced parentheses yield
// whatever the scan produces.
//
// Example: "3+4*2" becomes 3 4 2 * +
func Convert(infix string) *container.Queue[token.Token] {
	postfix := container.NewQueue[token.Token]()
	ops := container.NewStack[operator.Operator]()
	defer ops.Destroy()

	for i := 0; i < len(infix); i++ {
		ch := infix[i]

		if isDigit(ch) {
			var n int64
			for ; i < len(infix) && isDigit(infix[i]); i++ {
				n = n*10 + int64(infix[i]-'0')
			}
			i-- // loop increment lands on the first non-digit
			postfix.Enqueue(token.Number(n))
			continue
		}

		op, ok := operator.Parse(ch)
		if !ok {
			continue
		}

		switch op {
		case operator.LParen:
			ops.Push(op)
		case operator.RParen:
			closeGroup(ops, postfix)
		default:
			for {
				top, ok := ops.Peek()
				if !ok || !op.Pops(top) {
					break
				}
				ops.Pop()
				postfix.Enqueue(token.Op(top))
			}
			ops.Push(op)
		}
	}

	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		if top == operator.LParen {
			slog.Debug("dropping unmatched parenthesis", "expression", infix)
			continue
		}
		postfix.Enqueue(token.Op(top))
	}

	return postfix
}

// closeGroup moves operators to the output until the matching "(" is found
// and discarded. An unmatched ")" simply empties the stack.
func closeGroup(ops *container.Stack[operator.Operator], postfix *container.Queue[token.Token]) {
	for {
		top, ok := ops.Pop()
		if !ok || top == operator.LParen {
			return
		}
		postfix.Enqueue(token.Op(top))
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Format renders a postfix sequence space separated, or "(empty queue)".
func Format(postfix *container.Queue[token.Token]) string {
	if postfix.IsEmpty() {
		return emptyQueue
	}
	return FormatTokens(postfix.Items())
}

func FormatTokens(tokens []token.Token) string {
	if len(tokens) == 0 {
		return emptyQueue
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
