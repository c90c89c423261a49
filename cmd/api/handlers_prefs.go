package main

import (
	"net/http"

	"movieweekly/proj/internal/domain/queries"
)

func (app *Application) getPrefs(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	params := app.prefs.QueryParams(r.Context(), user.UID)
	app.Http.Ok(w, r, envelop{"prefs": params}, "")
}

func (app *Application) updatePrefs(w http.ResponseWriter, r *http.Request) {
	var params queries.ViewAwardQueryParams
	if err := app.readJSON(w, r, &params); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	user := app.contextGetUser(r)
	if err := app.prefs.SaveQueryParams(r.Context(), user.UID, params); err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"prefs": app.prefs.QueryParams(r.Context(), user.UID)}, "Preferences saved")
}
