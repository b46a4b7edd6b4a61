package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/sustainscore/internal/campaign"
	"github.com/myrjola/sustainscore/internal/errors"
)

const maxCampaignBytes = 1 << 20

// score scores the campaign snapshot in the request body and responds with the report.
func (app *application) score(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxCampaignBytes)

	doc, err := campaign.Decode(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			app.clientError(w, r, http.StatusRequestEntityTooLarge, nil)
			return
		}
		app.clientError(w, r, http.StatusBadRequest, err)
		return
	}

	c, err := doc.Snapshot()
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, err)
		return
	}

	report := app.engine.Score(c)
	if len(report.Emissions.Defaulted) > 0 || len(report.Materials.Defaulted) > 0 {
		modes := make([]string, 0, len(report.Emissions.Defaulted))
		for _, mode := range report.Emissions.Defaulted {
			modes = append(modes, string(mode))
		}
		app.logger.LogAttrs(ctx, slog.LevelWarn, "scored with default reference values",
			slog.Any("modes", modes), slog.Any("materials", report.Materials.Defaulted))
	}
	app.logger.LogAttrs(ctx, slog.LevelInfo, "campaign scored",
		slog.String("campaign", c.Name), slog.Int("total", report.Total))

	app.writeJSON(w, r, http.StatusOK, campaign.NewReportDocument(c, report))
}
