package awards

import (
	"context"
	"log/slog"
	"time"

	"movieweekly/proj/internal/domain/models"
)

const remoteWriteTimeout = 10 * time.Second

type Cache interface {
	PutAward(a models.Award) int
	GetAward(id string) *models.Award
	DeleteAward(id string) int
	ListAwards() []models.Award
	GetMovie(id int) *models.Movie
}

type Remote interface {
	PutAward(ctx context.Context, a models.Award) error
	DeleteAward(ctx context.Context, id string) error
}

type TaskExecutor interface {
	Add(task func(ctx context.Context))
}

type AwardService struct {
	log    *slog.Logger
	cache  Cache
	remote Remote
	tasks  TaskExecutor
}

func New(log *slog.Logger, cache Cache, remote Remote, tasks TaskExecutor) *AwardService {
	return &AwardService{
		log:    log,
		cache:  cache,
		remote: remote,
		tasks:  tasks,
	}
}

func (s *AwardService) Get(id string) (*models.Award, error) {
	const op = "awards.AwardService.Get"
	award := s.cache.GetAward(id)
	if award == nil {
		s.log.Info("award not found", "op", op, "id", id)
		return nil, ErrAwardNotFound
	}
	return award, nil
}

func (s *AwardService) List() []models.Award {
	return s.cache.ListAwards()
}

// Save stores the award locally and pushes it to the remote collection.
// An award's movie must already be cached; saving the same identifying
// triple twice overwrites the prior award.
func (s *AwardService) Save(a models.Award) (int, error) {
	const op = "awards.AwardService.Save"
	log := s.log.With("op", op, "id", a.ID, "movieId", a.MovieID)
	if s.cache.GetMovie(a.MovieID) == nil {
		log.Info("awarded movie not cached")
		return 0, ErrAwardedMovieMissing
	}
	affected := s.cache.PutAward(a)
	s.tasks.Add(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, remoteWriteTimeout)
		defer cancel()
		if err := s.remote.PutAward(ctx, a); err != nil {
			log.Error("remote award write failed", "errMsg", err.Error())
		}
	})
	return affected, nil
}

func (s *AwardService) Delete(id string) int {
	const op = "awards.AwardService.Delete"
	log := s.log.With("op", op, "id", id)
	removed := s.cache.DeleteAward(id)
	s.tasks.Add(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, remoteWriteTimeout)
		defer cancel()
		if err := s.remote.DeleteAward(ctx, id); err != nil {
			log.Error("remote award delete failed", "errMsg", err.Error())
		}
	})
	return removed
}
