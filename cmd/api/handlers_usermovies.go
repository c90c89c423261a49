package main

import (
	"errors"
	"net/http"

	"movieweekly/proj/internal/services/usermovies"
)

func (app *Application) updateUserMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var updates usermovies.FlagUpdates
	if err := app.readJSON(w, r, &updates); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	user := app.contextGetUser(r)
	um, err := app.services.UserMovies.Update(user.UID, id, updates)
	if err != nil {
		if errors.Is(err, usermovies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"userMovie": um}, "Flags successfully updated")
}
