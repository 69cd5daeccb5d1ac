package calc

import (
	"log/slog"

	"github.com/DjordjeVuckovic/rpncalc/internal/container"
	"github.com/DjordjeVuckovic/rpncalc/internal/token"
)

// Result holds every stage of a single calculation.
type Result struct {
	Expression string        `json:"expression"`
	Postfix    []token.Token `json:"postfix"`
	Rendered   string        `json:"rendered"`
	Value      int64         `json:"value"`
}

type Calculator struct {
	logger *slog.Logger
}

type Option func(*Calculator)

func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run converts and evaluates expr. On evaluation failure the returned Result
// still carries the postfix sequence, so callers can show how far it got.
func (c *Calculator) Run(expr string) (*Result, error) {
	postfix := Convert(expr)

	res := &Result{
		Expression: expr,
		Postfix:    postfix.Items(),
		Rendered:   Format(postfix),
	}

	c.logger.Debug("expression converted", "expression", expr, "postfix", res.Rendered)

	v, err := c.Evaluate(postfix)
	if err != nil {
		c.logger.Debug("evaluation failed", "expression", expr, "error", err)
		return res, err
	}
	res.Value = v

	return res, nil
}

// Evaluate is the package Evaluate with diagnostics sent to the
// calculator's logger.
func (c *Calculator) Evaluate(postfix *container.Queue[token.Token]) (int64, error) {
	return evaluate(postfix, c.logger)
}

// ConvertOnly returns the postfix stage without evaluating it.
func (c *Calculator) ConvertOnly(expr string) *Result {
	postfix := Convert(expr)
	defer postfix.Destroy()

	return &Result{
		Expression: expr,
		Postfix:    postfix.Items(),
		Rendered:   Format(postfix),
	}
}
