package services

import (
	"context"
	"log/slog"

	"movieweekly/proj/internal/domain/models"
	"movieweekly/proj/internal/services/awards"
	"movieweekly/proj/internal/services/movies"
	"movieweekly/proj/internal/services/usermovies"
	"movieweekly/proj/internal/storage/cache"
)

// Remote is the full write surface of the remote store. A single value
// (the redis-backed store, or a fake in tests) serves every service.
type Remote interface {
	PutMovie(ctx context.Context, m models.Movie) error
	DeleteMovie(ctx context.Context, id int) error
	PutAward(ctx context.Context, a models.Award) error
	DeleteAward(ctx context.Context, id string) error
	PutUserMovie(ctx context.Context, uid string, um models.UserMovie) error
}

type TaskExecutor interface {
	Add(task func(ctx context.Context))
}

type Services struct {
	Movies     *movies.MovieService
	Awards     *awards.AwardService
	UserMovies *usermovies.UserMovieService
}

func New(log *slog.Logger, store *cache.Store, remote Remote, tasks TaskExecutor) *Services {
	return &Services{
		Movies:     movies.New(log, store, remote, tasks),
		Awards:     awards.New(log, store, remote, tasks),
		UserMovies: usermovies.New(log, store, remote, tasks),
	}
}
