// Package remotesync keeps the local cache store consistent with the
// remote collections by consuming their change feeds.
package remotesync

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"

	"movieweekly/proj/internal/domain/models"
	"movieweekly/proj/internal/storage"
	"movieweekly/proj/internal/storage/cache"
)

// Feed is the change-feed half of the remote store.
type Feed interface {
	Subscribe(ctx context.Context, collections ...string) (<-chan storage.ChangeEvent, error)
}

// Listener mirrors feed events into the cache. Attach and Detach are
// idempotent; the nullable cancel handle tracks whether the listener is
// currently attached.
type Listener struct {
	log   *slog.Logger
	cache *cache.Store
	feed  Feed

	mu     sync.Mutex
	cancel context.CancelFunc // nil while detached
	done   chan struct{}
}

func New(log *slog.Logger, cache *cache.Store, feed Feed) *Listener {
	return &Listener{log: log, cache: cache, feed: feed}
}

// Attach subscribes to the movies and awards feeds and starts applying
// events. Attaching while already attached is a no-op.
func (l *Listener) Attach(ctx context.Context) error {
	const op = "remotesync.Listener.Attach"
	log := l.log.With("op", op)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		log.Debug("listener already attached")
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	events, err := l.feed.Subscribe(ctx, storage.CollectionMovies, storage.CollectionAwards)
	if err != nil {
		cancel()
		return err
	}
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done
	go func() {
		defer close(done)
		for ev := range events {
			l.apply(ev)
		}
	}()
	log.Info("listener attached", "collections", []string{storage.CollectionMovies, storage.CollectionAwards})
	return nil
}

// Detach stops mirroring and waits for the event loop to drain.
// Detaching while not attached is a no-op.
func (l *Listener) Detach() {
	const op = "remotesync.Listener.Detach"
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel == nil {
		l.log.Debug("listener not attached", "op", op)
		return
	}
	l.cancel()
	<-l.done
	l.cancel = nil
	l.done = nil
	l.log.Info("listener detached", "op", op)
}

func (l *Listener) apply(ev storage.ChangeEvent) {
	const op = "remotesync.Listener.apply"
	log := l.log.With("op", op, "type", string(ev.Type), "collection", ev.Collection, "key", ev.Key)
	switch ev.Type {
	case storage.ChildAdded, storage.ChildChanged:
		l.applyPut(log, ev)
	case storage.ChildRemoved:
		l.applyRemove(log, ev)
	case storage.ChildMoved:
		// Not expected for keyed collections; an anomaly, not a failure.
		log.Warn("unexpected child-moved event")
	default:
		log.Warn("unknown change event type")
	}
}

func (l *Listener) applyPut(log *slog.Logger, ev storage.ChangeEvent) {
	switch ev.Collection {
	case storage.CollectionMovies:
		var m models.Movie
		if err := json.Unmarshal(ev.Payload, &m); err != nil {
			log.Error("dropping undecodable movie payload", "errMsg", err.Error())
			return
		}
		l.cache.PutMovie(m)
	case storage.CollectionAwards:
		var a models.Award
		if err := json.Unmarshal(ev.Payload, &a); err != nil {
			log.Error("dropping undecodable award payload", "errMsg", err.Error())
			return
		}
		l.cache.PutAward(a)
	default:
		log.Warn("event for unknown collection")
	}
}

func (l *Listener) applyRemove(log *slog.Logger, ev storage.ChangeEvent) {
	switch ev.Collection {
	case storage.CollectionMovies:
		id, err := strconv.Atoi(ev.Key)
		if err != nil {
			log.Error("dropping event with non-numeric movie key", "errMsg", err.Error())
			return
		}
		l.cache.DeleteMovie(id)
	case storage.CollectionAwards:
		l.cache.DeleteAward(ev.Key)
	default:
		log.Warn("event for unknown collection")
	}
}
