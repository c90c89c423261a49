package builders

import (
	"io"
	"log/slog"
	"testing"

	"movieweekly/proj/internal/domain/fields"
	"movieweekly/proj/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestBuildMovie(t *testing.T) {
	t.Run("full values", func(t *testing.T) {
		movie, err := BuildMovie(testLog, Values{
			"imdbId":   "tt4016934",
			"title":    "The Handmaiden",
			"year":     "2016",
			"runtime":  "144 min",
			"released": "21 Apr 2017",
			"genre":    "Drama, Romance, Thriller",
			"poster":   "https://example.com/poster.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, 4016934, movie.ID)
		assert.Equal(t, "The Handmaiden", movie.Title)
		assert.Equal(t, int32(2016), movie.Year)
		assert.Equal(t, fields.MovieRuntime(144), movie.Runtime)
		assert.NotEqual(t, fields.ReleasedUnknown, movie.Released)
	})
	t.Run("every missing mandatory field is reported", func(t *testing.T) {
		movie, err := BuildMovie(testLog, Values{})
		assert.Nil(t, movie)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "imdbId")
		assert.Contains(t, validationErr.Fields, "title")
	})
	t.Run("unconvertible imdb id is reported", func(t *testing.T) {
		_, err := BuildMovie(testLog, Values{"imdbId": "4016934", "title": "No Prefix"})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "imdbId")
	})
	t.Run("malformed optional fields fall back to sentinels", func(t *testing.T) {
		movie, err := BuildMovie(testLog, Values{
			"imdbId":   "tt4016934",
			"title":    "The Handmaiden",
			"year":     "not a year",
			"runtime":  "two hours",
			"released": "sometime in spring",
		})
		require.NoError(t, err)
		assert.Equal(t, int32(0), movie.Year)
		assert.Equal(t, fields.RuntimeUnknown, movie.Runtime)
		assert.Equal(t, fields.ReleasedUnknown, movie.Released)
	})
}

func TestBuildAward(t *testing.T) {
	t.Run("id is composed from the triple", func(t *testing.T) {
		award, err := BuildAward(testLog, Values{
			"movieId":      "4016934",
			"awardDate":    "170512",
			"category":     models.CategoryMovie,
			"review":       "Movie of the week",
			"displayOrder": "1",
		})
		require.NoError(t, err)
		assert.Equal(t, "4016934_170512_M", award.ID)
		assert.Equal(t, 4016934, award.MovieID)
	})
	t.Run("every missing mandatory field is reported", func(t *testing.T) {
		_, err := BuildAward(testLog, Values{})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		for _, field := range []string{"movieId", "awardDate", "category", "review", "displayOrder"} {
			assert.Contains(t, validationErr.Fields, field)
		}
	})
	t.Run("award date must be six digits", func(t *testing.T) {
		_, err := BuildAward(testLog, Values{
			"movieId":      "4016934",
			"awardDate":    "2017-05-12",
			"category":     models.CategoryMovie,
			"review":       "r",
			"displayOrder": "1",
		})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "awardDate")
	})
	t.Run("category outside the closed set is rejected", func(t *testing.T) {
		_, err := BuildAward(testLog, Values{
			"movieId":      "4016934",
			"awardDate":    "170512",
			"category":     "X",
			"review":       "r",
			"displayOrder": "1",
		})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "category")
	})
}

func TestBuildUserMovie(t *testing.T) {
	t.Run("absent flags default to false", func(t *testing.T) {
		um, err := BuildUserMovie(testLog, Values{"id": "7"})
		require.NoError(t, err)
		assert.Equal(t, &models.UserMovie{ID: 7}, um)
	})
	t.Run("flags parse", func(t *testing.T) {
		um, err := BuildUserMovie(testLog, Values{
			"id":         "7",
			"onWishlist": "true",
			"watched":    "false",
			"favourite":  "true",
		})
		require.NoError(t, err)
		assert.True(t, um.OnWishlist)
		assert.False(t, um.Watched)
		assert.True(t, um.Favourite)
	})
	t.Run("id is mandatory", func(t *testing.T) {
		_, err := BuildUserMovie(testLog, Values{})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "id")
	})
}
