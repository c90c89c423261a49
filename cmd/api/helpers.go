package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"movieweekly/proj/internal/domain/builders"
	"movieweekly/proj/internal/provider"
	"movieweekly/proj/internal/services/awards"

	"github.com/go-chi/chi/v5"
)

func (app *Application) extractIDParam(w http.ResponseWriter, r *http.Request) (id int, extracted bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.Http.BadRequest(w, r, "invalid movie ID")
		return 0, false
	}
	if id < 1 {
		app.Http.BadRequest(w, r, "id must be greater than zero")
		return 0, false
	}
	return id, true
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	src := http.MaxBytesReader(w, r.Body, int64(maxBytes))
	defer io.Copy(io.Discard, src)
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err != nil {
		return handleJsonErr(err)
	}
	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// readValues reads a flat JSON object into builder input values.
// Scalars of any JSON type are accepted; the builders re-parse them.
func (app *Application) readValues(w http.ResponseWriter, r *http.Request) (builders.Values, error) {
	raw := map[string]any{}
	if err := app.readJSON(w, r, &raw); err != nil {
		return nil, err
	}
	values := builders.Values{}
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
		case string:
			values[key] = v
		case float64:
			if v == float64(int64(v)) {
				values[key] = strconv.FormatInt(int64(v), 10)
			} else {
				values[key] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		case bool:
			values[key] = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("field %q must be a scalar value", key)
		}
	}
	return values, nil
}

func handleJsonErr(err error) error {
	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	var invalidUnmarshalError *json.InvalidUnmarshalError
	switch {
	case errors.As(err, &syntaxError):
		return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("body contains badly-formed JSON")

	case errors.As(err, &unmarshalTypeError):
		if unmarshalTypeError.Field != "" {
			return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
		}
		return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

	case errors.Is(err, io.EOF):
		return errors.New("body must not be empty")

	case errors.As(err, &invalidUnmarshalError):
		panic(err)
	default:
		return err
	}
}

// handleProviderErr maps facade errors onto http responses.
func (app *Application) handleProviderErr(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *builders.ValidationError
	switch {
	case errors.As(err, &validationErr):
		app.Http.UnprocessableEntity(w, r, validationErr.Fields)
	case errors.Is(err, provider.ErrIDMismatch):
		app.Http.BadRequest(w, r, "id in the path does not match the id derived from the body")
	case errors.Is(err, provider.ErrUnrecognizedRequest):
		app.Http.BadRequest(w, r, "unrecognized request")
	case errors.Is(err, awards.ErrAwardedMovieMissing):
		app.Http.UnprocessableEntity(w, r, map[string]string{"movieId": "awarded movie is not present"})
	default:
		app.Http.ServerError(w, r, err, "")
	}
}
