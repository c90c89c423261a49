package queries

import (
	"sort"
	"testing"

	"movieweekly/proj/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []models.ViewAward {
	return []models.ViewAward{
		{ID: "1_170505_M", AwardDate: "170505", Category: models.CategoryMovie, ImdbID: "tt0000001", Title: "Alpha", Runtime: 120, Genre: "Drama, Thriller", Watched: true},
		{ID: "1_170505_D", AwardDate: "170505", Category: models.CategoryDVD, ImdbID: "tt0000001", Title: "Alpha", Runtime: 120, Genre: "Drama, Thriller", OnWishlist: true},
		{ID: "2_170512_M", AwardDate: "170512", Category: models.CategoryMovie, ImdbID: "tt0000002", Title: "Beta", Runtime: 90, Genre: "Comedy", Favourite: true},
		{ID: "3_170519_M", AwardDate: "170519", Category: models.CategoryMovie, ImdbID: "tt0000003", Title: "Gamma", Runtime: 90, Genre: "Drama", Watched: true, Favourite: true},
		{ID: "4_170519_D", AwardDate: "170519", Category: models.CategoryDVD, ImdbID: "tt0000004", Title: "Beta", Runtime: -1, Genre: ""},
	}
}

func sortedIDs(rows []models.ViewAward, sortOrder string) []string {
	less := Comparator(sortOrder)
	sorted := make([]models.ViewAward, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return less(&sorted[i], &sorted[j]) })
	ids := make([]string, len(sorted))
	for i := range sorted {
		ids[i] = sorted[i].ID
	}
	return ids
}

func TestComparatorOrdering(t *testing.T) {
	rows := sampleRows()
	t.Run("award date ascending breaks ties on category", func(t *testing.T) {
		assert.Equal(t,
			[]string{"1_170505_D", "1_170505_M", "2_170512_M", "4_170519_D", "3_170519_M"},
			sortedIDs(rows, SortAwardDateAsc))
	})
	t.Run("title ascending breaks ties on imdb id", func(t *testing.T) {
		assert.Equal(t,
			[]string{"1_170505_M", "1_170505_D", "2_170512_M", "4_170519_D", "3_170519_M"},
			sortedIDs(rows, SortTitleAsc))
	})
	t.Run("runtime ascending breaks ties on title", func(t *testing.T) {
		assert.Equal(t,
			[]string{"4_170519_D", "2_170512_M", "3_170519_M", "1_170505_D", "1_170505_M"},
			sortedIDs(rows, SortRuntimeAsc))
	})
	t.Run("descending is the exact reverse of ascending", func(t *testing.T) {
		// Comparator-level property, ties included.
		for _, pair := range [][2]string{
			{SortAwardDateAsc, SortAwardDateDesc},
			{SortTitleAsc, SortTitleDesc},
			{SortRuntimeAsc, SortRuntimeDesc},
		} {
			asc := Comparator(pair[0])
			desc := Comparator(pair[1])
			for i := range rows {
				for j := range rows {
					assert.Equal(t, asc(&rows[j], &rows[i]), desc(&rows[i], &rows[j]),
						"sort order %q rows %d/%d", pair[1], i, j)
				}
			}
		}
		// Award date keys are unique across the sample, so the sorted
		// lists reverse exactly too.
		asc := sortedIDs(rows, SortAwardDateAsc)
		desc := sortedIDs(rows, SortAwardDateDesc)
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})
	t.Run("antisymmetry", func(t *testing.T) {
		for _, sortOrder := range []string{SortAwardDateAsc, SortAwardDateDesc, SortTitleAsc, SortTitleDesc, SortRuntimeAsc, SortRuntimeDesc} {
			less := Comparator(sortOrder)
			for i := range rows {
				for j := range rows {
					if less(&rows[i], &rows[j]) {
						assert.False(t, less(&rows[j], &rows[i]), "sort order %q rows %d/%d", sortOrder, i, j)
					}
				}
			}
		}
	})
}

func TestComparatorDefaultFallback(t *testing.T) {
	rows := sampleRows()
	want := sortedIDs(rows, SortAwardDateDesc)
	for _, sortOrder := range []string{"", "garbage", "title SIDEWAYS", "awardDate"} {
		assert.Equal(t, want, sortedIDs(rows, sortOrder), "sort order %q", sortOrder)
	}
}

func filterIDs(rows []models.ViewAward, p ViewAwardQueryParams) []string {
	pass := Predicate(p)
	var ids []string
	for i := range rows {
		if pass(&rows[i]) {
			ids = append(ids, rows[i].ID)
		}
	}
	return ids
}

func TestPredicate(t *testing.T) {
	rows := sampleRows()
	t.Run("any matches everything", func(t *testing.T) {
		assert.Len(t, filterIDs(rows, Defaults()), len(rows))
		assert.Len(t, filterIDs(rows, ViewAwardQueryParams{}), len(rows))
	})
	t.Run("genre matches a csv token case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"1_170505_M", "1_170505_D", "3_170519_M"},
			filterIDs(rows, ViewAwardQueryParams{FilterGenre: "drama"}))
	})
	t.Run("flag filters", func(t *testing.T) {
		assert.Equal(t, []string{"1_170505_M", "3_170519_M"},
			filterIDs(rows, ViewAwardQueryParams{FilterWatched: FilterTrue}))
		assert.Equal(t, []string{"1_170505_D", "2_170512_M", "4_170519_D"},
			filterIDs(rows, ViewAwardQueryParams{FilterWatched: FilterFalse}))
	})
	t.Run("unrecognized flag value means any", func(t *testing.T) {
		assert.Len(t, filterIDs(rows, ViewAwardQueryParams{FilterWishlist: "maybe"}), len(rows))
	})
	t.Run("filters compose with and", func(t *testing.T) {
		combined := filterIDs(rows, ViewAwardQueryParams{FilterGenre: "Drama", FilterWatched: FilterTrue})
		assert.Equal(t, []string{"1_170505_M", "3_170519_M"}, combined)
		// The combination is exactly the intersection of the single filters.
		byGenre := filterIDs(rows, ViewAwardQueryParams{FilterGenre: "Drama"})
		byFlag := filterIDs(rows, ViewAwardQueryParams{FilterWatched: FilterTrue})
		for _, id := range combined {
			assert.Contains(t, byGenre, id)
			assert.Contains(t, byFlag, id)
		}
	})
}

func TestMerge(t *testing.T) {
	saved := ViewAwardQueryParams{
		SortOrder:       SortTitleAsc,
		FilterGenre:     "Drama",
		FilterWishlist:  FilterTrue,
		FilterWatched:   FilterAny,
		FilterFavourite: FilterAny,
	}
	request := ViewAwardQueryParams{FilterGenre: "Comedy"}
	merged := request.Merge(saved)
	assert.Equal(t, "Comedy", merged.FilterGenre)
	assert.Equal(t, SortTitleAsc, merged.SortOrder)
	assert.Equal(t, FilterTrue, merged.FilterWishlist)
}
