package main

import (
	"net/http"

	"movieweekly/proj/internal/domain/queries"
	"movieweekly/proj/internal/provider"
)

// getViewAwards lists the award/movie join. Query parameters left out
// of the request fall back to the caller's saved preferences, or to the
// documented defaults for anonymous callers.
func (app *Application) getViewAwards(w http.ResponseWriter, r *http.Request) {
	var params queries.ViewAwardQueryParams
	if err := app.decoder.Decode(&params, r.URL.Query()); err != nil {
		app.Http.BadRequest(w, r, "invalid query parameters")
		return
	}
	user := app.contextGetUser(r)
	fallback := queries.Defaults()
	if !user.IsAnonymous() {
		fallback = app.prefs.QueryParams(r.Context(), user.UID)
	}
	params = params.Merge(fallback)
	result, err := app.provider.Query(provider.URIViewAwardAll, user.UID, params)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"viewAwards": result.ViewAwards}, "")
}
