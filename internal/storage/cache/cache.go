// Package cache holds the in-process mirror of the remote collections.
// Every query in the system runs against this store; the remote side is
// only ever written through services and mirrored back by the sync
// listener. All mutations are atomic with respect to readers.
package cache

import (
	"log/slog"
	"sort"
	"sync"

	"movieweekly/proj/internal/domain/models"
	"movieweekly/proj/internal/domain/queries"
)

type Store struct {
	log *slog.Logger

	mu         sync.RWMutex
	movies     map[int]models.Movie
	awards     map[string]models.Award
	userMovies map[string]map[int]models.UserMovie // uid -> movie id -> flags
}

func New(log *slog.Logger) *Store {
	return &Store{
		log:        log,
		movies:     make(map[int]models.Movie),
		awards:     make(map[string]models.Award),
		userMovies: make(map[string]map[int]models.UserMovie),
	}
}

// PutMovie inserts or fully replaces the movie at its id. Last writer
// wins; there is no field merge. Returns the affected row count (1).
func (s *Store) PutMovie(m models.Movie) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies[m.ID] = m
	return 1
}

// GetMovie returns nil when the id is not cached.
func (s *Store) GetMovie(id int) *models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.movies[id]; ok {
		return &m
	}
	return nil
}

func (s *Store) DeleteMovie(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movies[id]; !ok {
		return 0
	}
	delete(s.movies, id)
	return 1
}

// ListMovies returns a copy ordered by id.
func (s *Store) ListMovies() []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	movies := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies
}

func (s *Store) PutAward(a models.Award) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awards[a.ID] = a
	return 1
}

func (s *Store) GetAward(id string) *models.Award {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.awards[id]; ok {
		return &a
	}
	return nil
}

func (s *Store) DeleteAward(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.awards[id]; !ok {
		return 0
	}
	delete(s.awards, id)
	return 1
}

// ListAwards returns a copy ordered by id.
func (s *Store) ListAwards() []models.Award {
	s.mu.RLock()
	defer s.mu.RUnlock()
	awards := make([]models.Award, 0, len(s.awards))
	for _, a := range s.awards {
		awards = append(awards, a)
	}
	sort.Slice(awards, func(i, j int) bool { return awards[i].ID < awards[j].ID })
	return awards
}

func (s *Store) PutUserMovie(uid string, um models.UserMovie) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags, ok := s.userMovies[uid]
	if !ok {
		flags = make(map[int]models.UserMovie)
		s.userMovies[uid] = flags
	}
	flags[um.ID] = um
	return 1
}

func (s *Store) GetUserMovie(uid string, movieID int) *models.UserMovie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if um, ok := s.userMovies[uid][movieID]; ok {
		return &um
	}
	return nil
}

// QueryViewAwards joins every cached award with its movie and the given
// user's flags, applies the resolved filters and ordering, and returns
// the transient view rows. Awards whose movie is missing from the cache
// are silently excluded.
func (s *Store) QueryViewAwards(uid string, p queries.ViewAwardQueryParams) []models.ViewAward {
	s.mu.RLock()
	rows := make([]models.ViewAward, 0, len(s.awards))
	pass := queries.Predicate(p)
	for _, a := range s.awards {
		m, ok := s.movies[a.MovieID]
		if !ok {
			continue
		}
		row := models.ViewAward{
			ID:           a.ID,
			MovieID:      a.MovieID,
			AwardDate:    a.AwardDate,
			Category:     a.Category,
			Review:       a.Review,
			DisplayOrder: a.DisplayOrder,
			ImdbID:       m.ImdbID,
			Title:        m.Title,
			Runtime:      m.Runtime,
			Genre:        m.Genre,
			Poster:       m.Poster,
		}
		if um, ok := s.userMovies[uid][a.MovieID]; ok {
			row.OnWishlist = um.OnWishlist
			row.Watched = um.Watched
			row.Favourite = um.Favourite
		}
		if pass(&row) {
			rows = append(rows, row)
		}
	}
	s.mu.RUnlock()
	less := queries.Comparator(p.SortOrder)
	sort.SliceStable(rows, func(i, j int) bool { return less(&rows[i], &rows[j]) })
	return rows
}
