package usermovies

import (
	"context"
	"log/slog"
	"time"

	"movieweekly/proj/internal/domain/models"
)

const remoteWriteTimeout = 10 * time.Second

type Cache interface {
	PutUserMovie(uid string, um models.UserMovie) int
	GetUserMovie(uid string, movieID int) *models.UserMovie
	GetMovie(id int) *models.Movie
}

type Remote interface {
	PutUserMovie(ctx context.Context, uid string, um models.UserMovie) error
}

type TaskExecutor interface {
	Add(task func(ctx context.Context))
}

// FlagUpdates carries the flags a toggle request wants to change; nil
// fields are left as they are.
type FlagUpdates struct {
	OnWishlist *bool `json:"onWishlist"`
	Watched    *bool `json:"watched"`
	Favourite  *bool `json:"favourite"`
}

type UserMovieService struct {
	log    *slog.Logger
	cache  Cache
	remote Remote
	tasks  TaskExecutor
}

func New(log *slog.Logger, cache Cache, remote Remote, tasks TaskExecutor) *UserMovieService {
	return &UserMovieService{
		log:    log,
		cache:  cache,
		remote: remote,
		tasks:  tasks,
	}
}

func (s *UserMovieService) Get(uid string, movieID int) *models.UserMovie {
	if um := s.cache.GetUserMovie(uid, movieID); um != nil {
		return um
	}
	// Absent flags read as all-false; the record is only created once a
	// flag is actually toggled.
	return &models.UserMovie{ID: movieID}
}

// Update applies the given flag changes for one user and movie, lazily
// creating the record on the first toggle, and pushes the new state to
// the user's remote subtree.
func (s *UserMovieService) Update(uid string, movieID int, updates FlagUpdates) (*models.UserMovie, error) {
	const op = "usermovies.UserMovieService.Update"
	log := s.log.With("op", op, "uid", uid, "movieId", movieID)
	if s.cache.GetMovie(movieID) == nil {
		log.Info("movie not cached")
		return nil, ErrMovieNotFound
	}
	um := models.UserMovie{ID: movieID}
	if existing := s.cache.GetUserMovie(uid, movieID); existing != nil {
		um = *existing
	}
	if updates.OnWishlist != nil {
		um.OnWishlist = *updates.OnWishlist
	}
	if updates.Watched != nil {
		um.Watched = *updates.Watched
	}
	if updates.Favourite != nil {
		um.Favourite = *updates.Favourite
	}
	s.cache.PutUserMovie(uid, um)
	s.tasks.Add(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, remoteWriteTimeout)
		defer cancel()
		if err := s.remote.PutUserMovie(ctx, uid, um); err != nil {
			log.Error("remote user-movie write failed", "errMsg", err.Error())
		}
	})
	return &um, nil
}
