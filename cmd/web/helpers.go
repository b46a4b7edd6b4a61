package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/myrjola/sustainscore/internal/campaign"
	"github.com/myrjola/sustainscore/internal/errors"
)

type errorResponse struct {
	Error    string                 `json:"error"`
	Problems []*campaign.FieldError `json:"problems,omitempty"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "marshal response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "failed writing response", errors.SlogError(err))
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	resp := errorResponse{Error: http.StatusText(status), Problems: nil}
	if err != nil {
		resp.Error = err.Error()
		if resp.Problems = campaign.FieldErrors(err); len(resp.Problems) > 0 {
			resp.Error = campaign.ErrInvalidCampaign.Error()
		}
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, http.StatusText(status),
			slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	} else {
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, http.StatusText(status),
			slog.String("method", method), slog.String("uri", uri))
	}
	app.writeJSON(w, r, status, resp)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound, nil)
}
