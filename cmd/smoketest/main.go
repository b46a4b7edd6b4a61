package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/myrjola/sustainscore/internal/campaign"
	"github.com/myrjola/sustainscore/internal/e2etest"
	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/myrjola/sustainscore/internal/logging"
)

// exampleTotal is the score of the example campaign with the default tables and policy.
const exampleTotal = 44

func TestScoring(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()
	var err error

	if err = client.Healthy(ctx); err != nil {
		return errors.Wrap(err, "check health")
	}
	var reference campaign.ReferenceDocument
	if reference, err = client.Reference(ctx); err != nil {
		return errors.Wrap(err, "fetch reference tables")
	}
	if len(reference.EmissionFactors) == 0 || len(reference.Materials) == 0 {
		return errors.New("reference tables are empty")
	}
	var report campaign.ReportDocument
	if report, err = client.Score(ctx, campaign.Example()); err != nil {
		return errors.Wrap(err, "score example")
	}
	// Deployments with a custom policy score the example differently.
	if reference.Rounding == "half-up" && reference.MaterialCeiling == 25 && report.Total != exampleTotal {
		return errors.New("unexpected example score",
			slog.Int("want", exampleTotal), slog.Int("got", report.Total))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only base URL to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <base-url>")
		os.Exit(1)
	}

	url := os.Args[1]
	ctx = logging.WithAttrs(ctx, slog.String("url", url))
	client := e2etest.NewClient(url)

	if err := TestScoring(ctx, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing scoring", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
