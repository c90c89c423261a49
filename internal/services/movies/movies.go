package movies

import (
	"context"
	"log/slog"
	"time"

	"movieweekly/proj/internal/domain/models"
)

const remoteWriteTimeout = 10 * time.Second

// Cache is the local mirror every read runs against.
type Cache interface {
	PutMovie(m models.Movie) int
	GetMovie(id int) *models.Movie
	DeleteMovie(id int) int
	ListMovies() []models.Movie
}

// Remote is the write half of the remote movies collection.
type Remote interface {
	PutMovie(ctx context.Context, m models.Movie) error
	DeleteMovie(ctx context.Context, id int) error
}

type TaskExecutor interface {
	Add(task func(ctx context.Context))
}

type MovieService struct {
	log    *slog.Logger
	cache  Cache
	remote Remote
	tasks  TaskExecutor
}

func New(log *slog.Logger, cache Cache, remote Remote, tasks TaskExecutor) *MovieService {
	return &MovieService{
		log:    log,
		cache:  cache,
		remote: remote,
		tasks:  tasks,
	}
}

func (s *MovieService) Get(id int) (*models.Movie, error) {
	const op = "movies.MovieService.Get"
	movie := s.cache.GetMovie(id)
	if movie == nil {
		s.log.Info("movie not found", "op", op, "id", id)
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

func (s *MovieService) List() []models.Movie {
	return s.cache.ListMovies()
}

// Save writes the movie to the cache (visible to queries immediately)
// and pushes it to the remote collection in the background. A failed
// remote write is logged, never retried automatically.
func (s *MovieService) Save(m models.Movie) int {
	const op = "movies.MovieService.Save"
	log := s.log.With("op", op, "id", m.ID, "title", m.Title)
	affected := s.cache.PutMovie(m)
	s.tasks.Add(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, remoteWriteTimeout)
		defer cancel()
		if err := s.remote.PutMovie(ctx, m); err != nil {
			log.Error("remote movie write failed", "errMsg", err.Error())
		}
	})
	return affected
}

// Delete removes the movie locally and remotely. Deleting an unknown id
// is not an error; the returned count is 0 or 1. Awards referencing the
// movie are left in place and drop out of view-award queries instead.
func (s *MovieService) Delete(id int) int {
	const op = "movies.MovieService.Delete"
	log := s.log.With("op", op, "id", id)
	removed := s.cache.DeleteMovie(id)
	s.tasks.Add(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, remoteWriteTimeout)
		defer cancel()
		if err := s.remote.DeleteMovie(ctx, id); err != nil {
			log.Error("remote movie delete failed", "errMsg", err.Error())
		}
	})
	return removed
}
