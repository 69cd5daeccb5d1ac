package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/rpncalc/internal/batch/runner"
	"github.com/DjordjeVuckovic/rpncalc/pkg/utils"
)

type Report struct {
	Meta    Meta    `json:"meta"`
	Summary Summary `json:"summary"`
	Entries []Entry `json:"entries"`
}

type Meta struct {
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	WarmupRuns  int             `json:"warmup_runs"`
	Runs        int             `json:"runs"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Errored  int     `json:"errored"`
	PassRate float64 `json:"pass_rate"`
	// MeanLatencyUs is the mean of per-case mean latencies in microseconds.
	MeanLatencyUs float64 `json:"mean_latency_us"`
}

type Entry struct {
	CaseID     string              `json:"case_id"`
	Expression string              `json:"expression"`
	Postfix    string              `json:"postfix"`
	Value      *int64              `json:"value,omitempty"`
	Error      string              `json:"error,omitempty"`
	Status     runner.Status       `json:"status"`
	Message    string              `json:"message,omitempty"`
	Timing     runner.Timing       `json:"timing"`
}

func Generate(res *runner.Result) *Report {
	r := &Report{
		Meta: Meta{
			Suite:       res.SuiteName,
			Timestamp:   res.StartedAt,
			WarmupRuns:  res.Config.WarmupRuns,
			Runs:        res.Config.Runs,
			Environment: NewEnvironmentInfo(),
		},
		Entries: make([]Entry, 0, len(res.Cases)),
	}

	var totalLatency time.Duration
	for _, c := range res.Cases {
		r.Entries = append(r.Entries, Entry{
			CaseID:     c.CaseID,
			Expression: c.Expression,
			Postfix:    c.Postfix,
			Value:      c.Value,
			Error:      c.Error,
			Status:     c.Status,
			Message:    c.Message,
			Timing:     c.Timing,
		})
		totalLatency += c.Timing.Mean
	}

	passed, failed, errored := res.Counts()
	r.Summary = Summary{
		Total:   len(res.Cases),
		Passed:  passed,
		Failed:  failed,
		Errored: errored,
	}
	if n := len(res.Cases); n > 0 {
		r.Summary.PassRate = utils.RoundDecimal(float64(passed)/float64(n)*100, 2)
		meanUs := float64(totalLatency.Nanoseconds()) / float64(n) / 1e3
		r.Summary.MeanLatencyUs = utils.RoundDecimal(meanUs, 3)
	}

	return r
}
