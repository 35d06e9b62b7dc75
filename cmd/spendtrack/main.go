package main

import (
	"context"
	"os"

	"spendtrack/internal/cli"
	"spendtrack/internal/ledger"
	"spendtrack/internal/log"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	ctx := context.Background()

	st, err := cli.OpenStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", log.FieldError, err)
		os.Exit(1)
	}
	defer st.Close()

	l, err := ledger.Open(ctx, st)
	if err != nil {
		logger.Error("failed to load ledger", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("ledger loaded", log.FieldRows, l.Len())

	app := cli.NewApp(l, cfg.ChartPath, logger, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logger.Error("menu loop failed", log.FieldError, err)
		os.Exit(1)
	}
}
