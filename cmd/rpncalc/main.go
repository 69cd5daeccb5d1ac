// Command rpncalc converts an infix integer expression to postfix and
// evaluates it.
//
//	rpncalc "3+4*2"
//	3+4*2
//	3 4 2 * +
//	11
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/rpncalc/internal/calc"
	"github.com/DjordjeVuckovic/rpncalc/pkg/config/env"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if len(args) < 1 {
		return 0
	}

	expr := args[0]
	fmt.Fprintln(stdout, expr)

	postfix := calc.Convert(expr)
	fmt.Fprintln(stdout, calc.Format(postfix))

	answer, err := calc.Evaluate(postfix)
	if err != nil {
		slog.Error("Failed to evaluate expression", "expression", expr, "error", err)
		return 1
	}

	fmt.Fprintln(stdout, answer)
	return 0
}
