package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"movieweekly/proj/internal/config"
	"movieweekly/proj/internal/domain/models"
	"movieweekly/proj/internal/prefs"
	"movieweekly/proj/internal/storage"
	"movieweekly/proj/internal/storage/cache"
)

const testAppSecret = "test-secret"

// fakeRemote satisfies RemoteStore without a redis server. Writes are
// accepted and dropped; the feed stays silent until the context ends.
type fakeRemote struct{}

func (fakeRemote) PutMovie(ctx context.Context, m models.Movie) error { return nil }
func (fakeRemote) DeleteMovie(ctx context.Context, id int) error      { return nil }
func (fakeRemote) PutAward(ctx context.Context, a models.Award) error { return nil }
func (fakeRemote) DeleteAward(ctx context.Context, id string) error   { return nil }
func (fakeRemote) PutUserMovie(ctx context.Context, uid string, um models.UserMovie) error {
	return nil
}

func (fakeRemote) Subscribe(ctx context.Context, collections ...string) (<-chan storage.ChangeEvent, error) {
	events := make(chan storage.ChangeEvent)
	go func() {
		<-ctx.Done()
		close(events)
	}()
	return events, nil
}

type memPrefsBackend struct {
	values map[string]string
}

func (b *memPrefsBackend) Get(ctx context.Context, key, field string) (string, error) {
	return b.values[key+"/"+field], nil
}

func (b *memPrefsBackend) Set(ctx context.Context, key, field, value string) error {
	b.values[key+"/"+field] = value
	return nil
}

func NewTestApplication(t *testing.T) *Application {
	t.Helper()
	cfg := &config.Config{
		AppSecret: testAppSecret,
		Tasks:     config.Tasks{MaxWorkers: 1, QueueSize: 16},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := cache.New(log)
	userPrefs := prefs.NewWithBackend(log, &memPrefsBackend{values: map[string]string{}})
	app := NewApplication(cfg, log, store, fakeRemote{}, userPrefs)
	app.tasks.Run()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		app.tasks.Shutdown(ctx)
	})
	return app
}
