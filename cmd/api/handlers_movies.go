package main

import (
	"context"
	"errors"
	"net/http"

	"movieweekly/proj/internal/clients/omdb"
	"movieweekly/proj/internal/domain/builders"
	"movieweekly/proj/internal/domain/queries"
	"movieweekly/proj/internal/provider"
)

func (app *Application) getMovies(w http.ResponseWriter, r *http.Request) {
	result, err := app.provider.Query(provider.URIMovies, "", queries.ViewAwardQueryParams{})
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movies": result.Movies}, "")
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	result, err := app.provider.Query(provider.MovieURI(id), "", queries.ViewAwardQueryParams{})
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	if len(result.Movies) == 0 {
		app.Http.NotFound(w, r, "Movie not found")
		return
	}
	app.Http.Ok(w, r, envelop{"movie": result.Movies[0]}, "")
}

// createMovie accepts either a full set of movie values or a bare
// imdbId, in which case the missing fields are fetched from the
// metadata api. Explicit values always win over fetched ones.
func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	values, err := app.readValues(w, r)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if values.Get("title") == "" && values.Get("imdbId") != "" {
		fetched, err := app.fetchMetadata(r.Context(), values.Get("imdbId"))
		switch {
		case errors.Is(err, omdb.ErrMovieNotFound):
			app.Http.NotFound(w, r, "No movie found for the given imdbId")
			return
		case err != nil:
			app.Http.ServerError(w, r, err, "Metadata lookup failed. Please try again later.")
			return
		}
		for key, value := range values {
			fetched[key] = value
		}
		values = fetched
	}
	uri, err := app.provider.Insert(provider.URIMovies, values)
	if err != nil {
		app.handleProviderErr(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"uri": uri}, "Movie successfully created")
}

func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	values, err := app.readValues(w, r)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	affected, err := app.provider.Update(provider.MovieURI(id), values)
	if err != nil {
		app.handleProviderErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"affected": affected}, "Movie successfully updated")
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	removed, err := app.provider.Delete(provider.MovieURI(id))
	if err != nil {
		app.handleProviderErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"removed": removed}, "Movie successfully deleted")
}

// fetchMetadata runs the metadata lookup on the background pool and
// waits for it, giving up as soon as the request context is cancelled.
// A result arriving after that is dropped, not delivered.
func (app *Application) fetchMetadata(ctx context.Context, imdbID string) (builders.Values, error) {
	type outcome struct {
		values builders.Values
		err    error
	}
	resultCh := make(chan outcome, 1)
	app.tasks.Add(func(taskCtx context.Context) {
		if ctx.Err() != nil || taskCtx.Err() != nil {
			return
		}
		values, err := app.omdb.FindByImdbID(ctx, imdbID)
		select {
		case resultCh <- outcome{values: values, err: err}:
		default:
		}
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultCh:
		return result.values, result.err
	}
}
