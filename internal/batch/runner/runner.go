package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/rpncalc/internal/batch/suite"
	"github.com/DjordjeVuckovic/rpncalc/internal/calc"
	"github.com/DjordjeVuckovic/rpncalc/internal/history"
)

type Status string

const (
	StatusPass  Status = "PASS"
	StatusFail  Status = "FAIL"
	StatusError Status = "ERROR"
)

type CaseResult struct {
	CaseID     string
	Expression string
	Postfix    string
	Value      *int64
	Error      string
	Status     Status
	Message    string
	Timing     Timing
}

type Result struct {
	SuiteName string
	StartedAt time.Time
	Config    Config
	Cases     []CaseResult
}

// Counts returns the number of passed, failed and errored cases.
func (r *Result) Counts() (passed, failed, errored int) {
	for _, c := range r.Cases {
		switch c.Status {
		case StatusPass:
			passed++
		case StatusFail:
			failed++
		case StatusError:
			errored++
		}
	}
	return passed, failed, errored
}

func (r *Result) Failed() bool {
	_, failed, errored := r.Counts()
	return failed+errored > 0
}

type Runner struct {
	cfg      Config
	calc     *calc.Calculator
	recorder history.Store
}

type Option func(*Runner)

// WithRecorder stores the outcome of every case in a history store.
func WithRecorder(store history.Store) Option {
	return func(r *Runner) {
		r.recorder = store
	}
}

func New(cfg Config, opts ...Option) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = 0
	}
	r := &Runner{cfg: cfg, calc: calc.New()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every case of s in order. It stops early only when ctx is
// cancelled.
func (r *Runner) Run(ctx context.Context, s *suite.Suite) (*Result, error) {
	result := &Result{
		SuiteName: s.Name,
		StartedAt: time.Now(),
		Config:    r.cfg,
		Cases:     make([]CaseResult, 0, len(s.Cases)),
	}

	slog.Info("Running suite", "suite", s.Name, "cases", len(s.Cases), "runs", r.cfg.Runs, "warmup", r.cfg.WarmupRuns)

	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("suite %q interrupted: %w", s.Name, err)
		}

		cr := r.runCase(c)
		result.Cases = append(result.Cases, cr)

		if r.recorder != nil {
			r.record(ctx, cr)
		}

		slog.Debug("Case finished", "id", c.ID, "status", cr.Status, "message", cr.Message)
	}

	return result, nil
}

func (r *Runner) runCase(c suite.Case) CaseResult {
	for i := 0; i < r.cfg.WarmupRuns; i++ {
		_, _ = r.calc.Run(c.Expression)
	}

	var (
		res     *calc.Result
		evalErr error
	)
	durations := make([]time.Duration, 0, r.cfg.Runs)
	for i := 0; i < r.cfg.Runs; i++ {
		start := time.Now()
		res, evalErr = r.calc.Run(c.Expression)
		durations = append(durations, time.Since(start))
	}

	cr := CaseResult{
		CaseID:     c.ID,
		Expression: c.Expression,
		Postfix:    res.Rendered,
		Timing:     newTiming(durations),
	}
	if evalErr != nil {
		cr.Error = evalErr.Error()
	} else {
		v := res.Value
		cr.Value = &v
	}

	cr.Status, cr.Message = judge(c, res, evalErr)
	return cr
}

func judge(c suite.Case, res *calc.Result, evalErr error) (Status, string) {
	if want := c.ExpectError.Sentinel(); want != nil {
		if evalErr == nil {
			return StatusFail, fmt.Sprintf("expected %s, got %d", c.ExpectError, res.Value)
		}
		if !errors.Is(evalErr, want) {
			return StatusFail, fmt.Sprintf("expected %s, got %v", c.ExpectError, evalErr)
		}
		return StatusPass, ""
	}

	if evalErr != nil {
		return StatusError, evalErr.Error()
	}

	if c.Expect != nil && *c.Expect != res.Value {
		return StatusFail, fmt.Sprintf("expected %d, got %d", *c.Expect, res.Value)
	}

	return StatusPass, ""
}

func (r *Runner) record(ctx context.Context, cr CaseResult) {
	rec := history.Record{
		Expression: cr.Expression,
		Postfix:    cr.Postfix,
		Result:     cr.Value,
		Error:      cr.Error,
	}
	if _, err := r.recorder.Save(ctx, rec); err != nil {
		slog.Error("Failed to record case", "id", cr.CaseID, "error", err)
	}
}
