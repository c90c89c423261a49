package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MovieIDInvalid is returned for IMDb ids that cannot be converted.
// Conversion never fails with an error.
const MovieIDInvalid = -1

const imdbIDPrefix = "tt"

// ImdbIDToMovieID derives the short numeric movie id from a canonical
// IMDb id, e.g. "tt4016934" -> 4016934. Inputs without the "tt" prefix
// or with a non-numeric remainder yield MovieIDInvalid.
func ImdbIDToMovieID(imdbID string) int {
	rest, found := strings.CutPrefix(imdbID, imdbIDPrefix)
	if !found || rest == "" {
		return MovieIDInvalid
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id < 0 {
		return MovieIDInvalid
	}
	return id
}

// MovieIDToImdbID is the inverse of ImdbIDToMovieID. IMDb zero-pads ids
// to at least seven digits.
func MovieIDToImdbID(movieID int) string {
	if movieID < 0 {
		return ""
	}
	return fmt.Sprintf("%s%07d", imdbIDPrefix, movieID)
}

// ComposeAwardID builds the composite award id. The same triple always
// yields the same id, so re-saving an award overwrites rather than
// duplicates.
func ComposeAwardID(movieID int, awardDate, category string) string {
	return fmt.Sprintf("%d_%s_%s", movieID, awardDate, category)
}
