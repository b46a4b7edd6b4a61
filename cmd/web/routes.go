package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("POST /api/score", app.score)
	mux.HandleFunc("GET /api/reference", app.reference)
	mux.HandleFunc("/", app.notFound)

	common := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	return common.Then(timeoutHandler(mux, defaultTimeout))
}
