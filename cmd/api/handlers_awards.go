package main

import (
	"net/http"

	"movieweekly/proj/internal/domain/queries"
	"movieweekly/proj/internal/provider"

	"github.com/go-chi/chi/v5"
)

func (app *Application) getAwards(w http.ResponseWriter, r *http.Request) {
	result, err := app.provider.Query(provider.URIAwards, "", queries.ViewAwardQueryParams{})
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"awards": result.Awards}, "")
}

func (app *Application) getAward(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := app.provider.Query(provider.AwardURI(id), "", queries.ViewAwardQueryParams{})
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	if len(result.Awards) == 0 {
		app.Http.NotFound(w, r, "Award not found")
		return
	}
	app.Http.Ok(w, r, envelop{"award": result.Awards[0]}, "")
}

func (app *Application) createAward(w http.ResponseWriter, r *http.Request) {
	values, err := app.readValues(w, r)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	uri, err := app.provider.Insert(provider.URIAwards, values)
	if err != nil {
		app.handleProviderErr(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"uri": uri}, "Award successfully created")
}

func (app *Application) updateAward(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	values, err := app.readValues(w, r)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	affected, err := app.provider.Update(provider.AwardURI(id), values)
	if err != nil {
		app.handleProviderErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"affected": affected}, "Award successfully updated")
}

func (app *Application) deleteAward(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := app.provider.Delete(provider.AwardURI(id))
	if err != nil {
		app.handleProviderErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"removed": removed}, "Award successfully deleted")
}
