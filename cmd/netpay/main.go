package main

import (
	"log/slog"
	"os"

	"netpay/internal/app/cli"
	"netpay/internal/platform/config"
	"netpay/internal/platform/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	input, err := config.LoadEmployee()
	if err != nil {
		logger.Error("invalid employee input", "err", err)
		os.Exit(1)
	}

	runner := &cli.Runner{Config: cfg, Logger: logger, Out: os.Stdout}
	if err := runner.Run(input); err != nil {
		logger.Error("net pay run failed", "err", err)
		os.Exit(1)
	}
}
