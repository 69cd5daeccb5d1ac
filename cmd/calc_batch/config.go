package main

import (
	"flag"
	"fmt"
)

type cliConfig struct {
	SuitePath string
	Output    string
	Warmup    int
	Runs      int
	Record    bool
}

func parseFlags(args []string) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("calc_batch", flag.ContinueOnError)
	fs.StringVar(&cfg.SuitePath, "suite", "configs/suites/precedence.yaml", "Path to suite YAML")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	fs.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs per case before measurement")
	fs.IntVar(&cfg.Runs, "runs", 1, "Number of measured runs per case")
	fs.BoolVar(&cfg.Record, "record", false, "Save every case in the history store selected by HISTORY_TYPE")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.SuitePath == "" {
		return cfg, fmt.Errorf("--suite is required")
	}
	if cfg.Runs < 1 {
		return cfg, fmt.Errorf("--runs must be positive, got %d", cfg.Runs)
	}
	if cfg.Warmup < 0 {
		return cfg, fmt.Errorf("--warmup must not be negative, got %d", cfg.Warmup)
	}
	return cfg, nil
}
