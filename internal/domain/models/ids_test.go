package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImdbIDToMovieID(t *testing.T) {
	cases := []struct {
		name   string
		imdbID string
		want   int
	}{
		{"canonical id", "tt4016934", 4016934},
		{"zero padded id", "tt0000001", 1},
		{"missing prefix", "4016934", MovieIDInvalid},
		{"empty", "", MovieIDInvalid},
		{"prefix only", "tt", MovieIDInvalid},
		{"non numeric rest", "ttabcdef", MovieIDInvalid},
		{"negative rest", "tt-5", MovieIDInvalid},
		{"wrong prefix", "nm4016934", MovieIDInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ImdbIDToMovieID(tc.imdbID))
		})
	}
}

func TestImdbIDRoundTrip(t *testing.T) {
	for _, imdbID := range []string{"tt4016934", "tt0000001", "tt0120338"} {
		id := ImdbIDToMovieID(imdbID)
		assert.Equal(t, imdbID, MovieIDToImdbID(id))
		// Deriving from the round-tripped id changes nothing.
		assert.Equal(t, id, ImdbIDToMovieID(MovieIDToImdbID(id)))
	}
	assert.Equal(t, "", MovieIDToImdbID(MovieIDInvalid))
}

func TestComposeAwardID(t *testing.T) {
	id := ComposeAwardID(4016934, "170512", CategoryMovie)
	assert.Equal(t, "4016934_170512_M", id)
	// Same triple, same id.
	assert.Equal(t, id, ComposeAwardID(4016934, "170512", CategoryMovie))
	// Any differing component yields a different id.
	assert.NotEqual(t, id, ComposeAwardID(4016934, "170512", CategoryDVD))
	assert.NotEqual(t, id, ComposeAwardID(4016934, "170519", CategoryMovie))
	assert.NotEqual(t, id, ComposeAwardID(4016935, "170512", CategoryMovie))
}
