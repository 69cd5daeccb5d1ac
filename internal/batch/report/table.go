package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Meta.Suite)

	header := []string{"Case", "Expression", "Postfix", "Value", "p50", "p95", "p99", "Status", "Message"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Entries {
		row := []string{
			e.CaseID,
			e.Expression,
			e.Postfix,
			fmtValue(e),
			fmtDuration(e.Timing.P50),
			fmtDuration(e.Timing.P95),
			fmtDuration(e.Timing.P99),
			string(e.Status),
			e.Message,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	s := r.Summary
	fmt.Fprintf(tw, "Passed: %d/%d (%.2f%%)\tFailed: %d\tErrored: %d\tMean latency: %.3fus\n",
		s.Passed, s.Total, s.PassRate, s.Failed, s.Errored, s.MeanLatencyUs)

	tw.Flush()
}

func fmtValue(e Entry) string {
	if e.Value != nil {
		return fmt.Sprintf("%d", *e.Value)
	}
	if e.Error != "" {
		return "-"
	}
	return ""
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fus", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
}
