package main

import "net/http"

// HealthCheck godoc
//
//	@Summary		Health check
//	@Description	Reports environment, version and the state of the directory snapshot.
//	@Tags			Ops
//	@Produce		json
//	@Success		200	{object}	map[string]any	"Health info"
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	source, notice := app.store.Baristas.Status()
	stats := app.store.Baristas.Stats()

	sheetState := "configured"
	if !app.sheet.Configured() {
		sheetState = "unconfigured"
	}

	data := map[string]any{
		"status":   "ok",
		"sheet":    sheetState,
		"env":      app.config.env,
		"version":  version,
		"source":   source,
		"notice":   notice,
		"baristas": stats.Baristas,
		"reviews":  stats.Reviews,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
