// Package builders constructs domain entities from generic key/value
// input (form payloads, remote records, stored rows). A builder either
// returns a fully populated entity or a *ValidationError naming every
// missing or malformed mandatory field. Optional numeric fields that
// fail to parse resolve to their unknown sentinels instead of failing
// the build.
package builders

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"movieweekly/proj/internal/domain/fields"
	"movieweekly/proj/internal/domain/models"
	"movieweekly/proj/internal/lib/validator"

	govalidator "github.com/go-playground/validator/v10"
)

// Values is the generic key->value input every builder consumes.
type Values map[string]string

func (v Values) Get(key string) string {
	return strings.TrimSpace(v[key])
}

// ValidationError reports every failed field of a build attempt.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid entity: " + strings.Join(parts, "; ")
}

var validate = govalidator.New(govalidator.WithRequiredStructEnabled())

type movieInput struct {
	ImdbID string `json:"imdbId" validate:"required"`
	Title  string `json:"title" validate:"required"`
}

type awardInput struct {
	MovieID      int    `json:"movieId" validate:"required,gt=0"`
	AwardDate    string `json:"awardDate" validate:"required,len=6,numeric" errorMsg:"Value must be a date in YYMMDD format"`
	Category     string `json:"category" validate:"required,oneof=M D"`
	Review       string `json:"review" validate:"required"`
	DisplayOrder int    `json:"displayOrder" validate:"required,gt=0"`
}

type userMovieInput struct {
	ID int `json:"id" validate:"required,gt=0"`
}

// BuildMovie requires imdbId and title. The numeric movie id is derived
// from the IMDb id, never taken from the input.
func BuildMovie(log *slog.Logger, v Values) (*models.Movie, error) {
	const op = "builders.BuildMovie"
	input := movieInput{ImdbID: v.Get("imdbId"), Title: v.Get("title")}
	errs := validator.ValidateStruct(validate, input)
	id := models.ImdbIDToMovieID(input.ImdbID)
	if input.ImdbID != "" && id == models.MovieIDInvalid {
		if errs == nil {
			errs = make(map[string]string)
		}
		errs["imdbId"] = `Value must be "tt" followed by digits`
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	movie := &models.Movie{
		ID:       id,
		ImdbID:   input.ImdbID,
		Title:    input.Title,
		Released: fields.ReleasedUnknown,
		Runtime:  fields.RuntimeUnknown,
		Genre:    v.Get("genre"),
		Poster:   v.Get("poster"),
	}
	if raw := v.Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			movie.Year = int32(year)
		} else {
			log.Info("unparsable year, skipping", "op", op, "imdbId", input.ImdbID, "year", raw)
		}
	}
	if raw := v.Get("runtime"); raw != "" {
		movie.Runtime = fields.ParseMovieRuntime(raw)
		if movie.Runtime == fields.RuntimeUnknown {
			log.Info("unparsable runtime, falling back to unknown", "op", op, "imdbId", input.ImdbID, "runtime", raw)
		}
	}
	if raw := v.Get("released"); raw != "" {
		movie.Released = fields.ParseReleasedDate(raw)
		if movie.Released == fields.ReleasedUnknown {
			log.Info("unparsable release date, falling back to unknown", "op", op, "imdbId", input.ImdbID, "released", raw)
		}
	}
	return movie, nil
}

// BuildAward requires movieId, awardDate, category, review and
// displayOrder. The award id is composed from the identifying triple.
func BuildAward(log *slog.Logger, v Values) (*models.Award, error) {
	input := awardInput{
		AwardDate: v.Get("awardDate"),
		Category:  v.Get("category"),
		Review:    v.Get("review"),
	}
	// Parse failures leave the int fields zero, which the required rule
	// then reports alongside any other missing fields.
	input.MovieID, _ = strconv.Atoi(v.Get("movieId"))
	input.DisplayOrder, _ = strconv.Atoi(v.Get("displayOrder"))
	if errs := validator.ValidateStruct(validate, input); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	return &models.Award{
		ID:           models.ComposeAwardID(input.MovieID, input.AwardDate, input.Category),
		MovieID:      input.MovieID,
		AwardDate:    input.AwardDate,
		Category:     input.Category,
		Review:       input.Review,
		DisplayOrder: input.DisplayOrder,
	}, nil
}

// BuildUserMovie requires the movie id; absent flags default to false.
func BuildUserMovie(log *slog.Logger, v Values) (*models.UserMovie, error) {
	input := userMovieInput{}
	input.ID, _ = strconv.Atoi(v.Get("id"))
	if errs := validator.ValidateStruct(validate, input); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	parseFlag := func(key string) bool {
		flag, err := strconv.ParseBool(v.Get(key))
		return err == nil && flag
	}
	return &models.UserMovie{
		ID:         input.ID,
		OnWishlist: parseFlag("onWishlist"),
		Watched:    parseFlag("watched"),
		Favourite:  parseFlag("favourite"),
	}, nil
}
