// Package queries resolves a view-award query request into a concrete
// ordering and filter predicate. Unrecognized sort orders and filter
// values fall back to documented defaults rather than failing, so stale
// or defensive callers keep working.
package queries

import (
	"strings"

	"movieweekly/proj/internal/domain/models"
)

// Recognized sort orders. Anything else resolves to SortDefault.
const (
	SortAwardDateAsc  = "awardDate ASC"
	SortAwardDateDesc = "awardDate DESC"
	SortTitleAsc      = "title ASC"
	SortTitleDesc     = "title DESC"
	SortRuntimeAsc    = "runtime ASC"
	SortRuntimeDesc   = "runtime DESC"

	SortDefault = SortAwardDateDesc
)

// Filter values. The flag filters accept TRUE/FALSE and treat anything
// else as ANY; the genre filter treats ANY (or empty) as no constraint.
const (
	FilterAny   = "ANY"
	FilterTrue  = "TRUE"
	FilterFalse = "FALSE"
)

// ViewAwardQueryParams describes one query request. Zero values mean
// "use the default".
type ViewAwardQueryParams struct {
	SortOrder       string `json:"sortOrder" schema:"sortOrder"`
	FilterGenre     string `json:"filterGenre" schema:"filterGenre"`
	FilterWishlist  string `json:"filterWishlist" schema:"filterWishlist"`
	FilterWatched   string `json:"filterWatched" schema:"filterWatched"`
	FilterFavourite string `json:"filterFavourite" schema:"filterFavourite"`
}

// Defaults returns the parameters an empty request resolves to.
func Defaults() ViewAwardQueryParams {
	return ViewAwardQueryParams{
		SortOrder:       SortDefault,
		FilterGenre:     FilterAny,
		FilterWishlist:  FilterAny,
		FilterWatched:   FilterAny,
		FilterFavourite: FilterAny,
	}
}

// Merge fills every unset field of p from other.
func (p ViewAwardQueryParams) Merge(other ViewAwardQueryParams) ViewAwardQueryParams {
	if p.SortOrder == "" {
		p.SortOrder = other.SortOrder
	}
	if p.FilterGenre == "" {
		p.FilterGenre = other.FilterGenre
	}
	if p.FilterWishlist == "" {
		p.FilterWishlist = other.FilterWishlist
	}
	if p.FilterWatched == "" {
		p.FilterWatched = other.FilterWatched
	}
	if p.FilterFavourite == "" {
		p.FilterFavourite = other.FilterFavourite
	}
	return p
}

// compareAwardDate orders by award date ascending, then category
// ascending ("D" before "M"). The category tie-break is chosen so that
// reversing the comparator puts Movie awards before DVD awards on the
// same date.
func compareAwardDate(a, b *models.ViewAward) int {
	if c := strings.Compare(a.AwardDate, b.AwardDate); c != 0 {
		return c
	}
	return strings.Compare(a.Category, b.Category)
}

// compareTitle orders by title ascending, then IMDb id ascending as a
// stable tie-break.
func compareTitle(a, b *models.ViewAward) int {
	if c := strings.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return strings.Compare(a.ImdbID, b.ImdbID)
}

// compareRuntime orders by runtime ascending, then title ascending.
func compareRuntime(a, b *models.ViewAward) int {
	if a.Runtime != b.Runtime {
		if a.Runtime < b.Runtime {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Title, b.Title)
}

func resolveSort(sortOrder string) (cmp func(a, b *models.ViewAward) int, desc bool) {
	switch sortOrder {
	case SortAwardDateAsc:
		return compareAwardDate, false
	case SortAwardDateDesc:
		return compareAwardDate, true
	case SortTitleAsc:
		return compareTitle, false
	case SortTitleDesc:
		return compareTitle, true
	case SortRuntimeAsc:
		return compareRuntime, false
	case SortRuntimeDesc:
		return compareRuntime, true
	}
	return compareAwardDate, true
}

// Comparator resolves sortOrder to a less function. The descending
// variant is the exact reverse of the ascending comparator, tie-breaks
// included, never an independent ordering.
func Comparator(sortOrder string) func(a, b *models.ViewAward) bool {
	cmp, desc := resolveSort(sortOrder)
	if desc {
		return func(a, b *models.ViewAward) bool { return cmp(b, a) < 0 }
	}
	return func(a, b *models.ViewAward) bool { return cmp(a, b) < 0 }
}

func matchFlag(filter string, value bool) bool {
	switch strings.ToUpper(strings.TrimSpace(filter)) {
	case FilterTrue:
		return value
	case FilterFalse:
		return !value
	}
	return true
}

func matchGenre(filter, genres string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, FilterAny) {
		return true
	}
	for _, genre := range strings.Split(genres, ",") {
		if strings.EqualFold(strings.TrimSpace(genre), filter) {
			return true
		}
	}
	return false
}

// Predicate resolves the four filters to a single ANDed predicate.
func Predicate(p ViewAwardQueryParams) func(*models.ViewAward) bool {
	return func(va *models.ViewAward) bool {
		return matchGenre(p.FilterGenre, va.Genre) &&
			matchFlag(p.FilterWishlist, va.OnWishlist) &&
			matchFlag(p.FilterWatched, va.Watched) &&
			matchFlag(p.FilterFavourite, va.Favourite)
	}
}
