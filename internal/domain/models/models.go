package models

import "movieweekly/proj/internal/domain/fields"

// Award categories. The single-letter values are persisted and take part
// in award ids, so they never change.
const (
	CategoryDVD   = "D"
	CategoryMovie = "M"
)

// Movie is an immutable metadata record. Updates replace the whole
// record; nothing mutates a stored Movie in place.
type Movie struct {
	ID       int                 `json:"id"`                 // Numeric ID derived from the IMDb ID
	ImdbID   string              `json:"imdbId"`             // Canonical IMDb ID ("tt" + digits)
	Title    string              `json:"title"`              // Movie title
	Year     int32               `json:"year,omitempty"`     // Release year
	Released fields.ReleasedDate `json:"released,omitempty"` // Release date, epoch millis, -1 if unknown
	Runtime  fields.MovieRuntime `json:"runtime,omitempty"`  // Runtime in minutes, -1 if unknown
	Genre    string              `json:"genre,omitempty"`    // Comma-separated genre list
	Poster   string              `json:"poster,omitempty"`   // Poster image URL
}

// Award is a "movie of the week" / "DVD of the week" entry. The
// (MovieID, AwardDate, Category) triple is unique; re-saving the same
// triple overwrites the prior award.
type Award struct {
	ID           string `json:"id"`           // Composite id "{movieId}_{awardDate}_{category}"
	MovieID      int    `json:"movieId"`      // Awarded movie
	AwardDate    string `json:"awardDate"`    // "YYMMDD"
	Category     string `json:"category"`     // CategoryMovie or CategoryDVD
	Review       string `json:"review"`       // Free-text review
	DisplayOrder int    `json:"displayOrder"` // Ordering hint, positive
}

// UserMovie is one user's flags for one movie. Created lazily on the
// first toggle, updated in place afterwards.
type UserMovie struct {
	ID         int  `json:"id"` // Movie id
	OnWishlist bool `json:"onWishlist"`
	Watched    bool `json:"watched"`
	Favourite  bool `json:"favourite"`
}

// ViewAward is the read-only join of an Award with its Movie and the
// requesting user's flags. It exists only as a query result.
type ViewAward struct {
	ID           string              `json:"id"`
	MovieID      int                 `json:"movieId"`
	AwardDate    string              `json:"awardDate"`
	Category     string              `json:"category"`
	Review       string              `json:"review"`
	DisplayOrder int                 `json:"displayOrder"`
	ImdbID       string              `json:"imdbId"`
	Title        string              `json:"title"`
	Runtime      fields.MovieRuntime `json:"runtime,omitempty"`
	Genre        string              `json:"genre,omitempty"`
	Poster       string              `json:"poster,omitempty"`
	OnWishlist   bool                `json:"onWishlist"`
	Watched      bool                `json:"watched"`
	Favourite    bool                `json:"favourite"`
}

const RoleAdmin = "admin"

// User is the authenticated caller as described by its token claims.
type User struct {
	UID  string
	Name string
	Role string
}

var AnonymousUser = &User{}

func (u *User) IsAnonymous() bool {
	return u == nil || u == AnonymousUser || u.UID == ""
}

func (u *User) IsAdmin() bool {
	return !u.IsAnonymous() && u.Role == RoleAdmin
}
