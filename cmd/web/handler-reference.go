package main

import (
	"net/http"

	"github.com/myrjola/sustainscore/internal/campaign"
)

// reference responds with the emission factors, material catalog and policy the server scores with.
func (app *application) reference(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, campaign.NewReferenceDocument(app.engine))
}
