package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/sustainscore/internal/config"
	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/myrjola/sustainscore/internal/logging"
	"github.com/myrjola/sustainscore/internal/pprofserver"
	"github.com/myrjola/sustainscore/internal/scoring"
)

type application struct {
	logger *slog.Logger
	engine scoring.Engine
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	cfg, err := config.Load(lookupEnv)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	var engine scoring.Engine
	if engine, err = config.Engine(cfg); err != nil {
		return errors.Wrap(err, "build scoring engine")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "scoring engine ready",
		slog.String("rounding", engine.Policy().Rounding.String()),
		slog.Int("materialCeiling", engine.Policy().MaterialCeiling),
		slog.Int("emissionFactors", len(engine.Factors().Modes())),
		slog.Int("materials", len(engine.Catalog().Definitions())),
		slog.String("tablesFile", cfg.TablesFile))

	if cfg.PprofAddr != "" {
		pprofserver.Launch(ctx, cfg.PprofAddr, logger)
	}

	app := application{
		logger: logger,
		engine: engine,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	// A missing .env file is fine, the environment may be configured otherwise.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failure loading .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
