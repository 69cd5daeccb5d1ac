package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/rpncalc/internal/history/factory"
	"github.com/DjordjeVuckovic/rpncalc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcAPIConfig struct {
	HistoryConfig factory.StoreConfig
}

func (as *AppConfig) Load() (*CalcAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	historyCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load history configuration from environment", "error", err)
		return nil, err
	}

	return &CalcAPIConfig{
		HistoryConfig: *historyCfg,
	}, nil
}
