// Package redisdb is the client for the remote source of truth: one hash
// per collection keyed by entity id, values stored as JSON, plus a
// pub/sub change feed per collection that mirrors every write. The sync
// listener consumes the feed to keep the local cache consistent.
package redisdb

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"movieweekly/proj/internal/domain/models"
	"movieweekly/proj/internal/storage"

	"github.com/redis/go-redis/v9"
)

// Connect dials the remote store and verifies the connection with a
// short ping.
func Connect(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

type RemoteDB struct {
	log    *slog.Logger
	client *redis.Client
}

func New(log *slog.Logger, client *redis.Client) *RemoteDB {
	return &RemoteDB{log: log, client: client}
}

func feedChannel(collection string) string {
	return "feed:" + collection
}

func userMoviesKey(uid string) string {
	return "users:" + uid + ":userMovies"
}

func (r *RemoteDB) PutMovie(ctx context.Context, m models.Movie) error {
	return r.put(ctx, storage.CollectionMovies, strconv.Itoa(m.ID), m)
}

func (r *RemoteDB) DeleteMovie(ctx context.Context, id int) error {
	return r.remove(ctx, storage.CollectionMovies, strconv.Itoa(id))
}

func (r *RemoteDB) PutAward(ctx context.Context, a models.Award) error {
	return r.put(ctx, storage.CollectionAwards, a.ID, a)
}

func (r *RemoteDB) DeleteAward(ctx context.Context, id string) error {
	return r.remove(ctx, storage.CollectionAwards, id)
}

// PutUserMovie writes one user's flags under that user's subtree. User
// flags are session-local state, so no change feed entry is published.
func (r *RemoteDB) PutUserMovie(ctx context.Context, uid string, um models.UserMovie) error {
	body, err := json.Marshal(um)
	if err != nil {
		return err
	}
	return r.client.HSet(ctx, userMoviesKey(uid), strconv.Itoa(um.ID), body).Err()
}

func (r *RemoteDB) put(ctx context.Context, collection, key string, entity any) error {
	body, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	added, err := r.client.HSet(ctx, collection, key, body).Result()
	if err != nil {
		return err
	}
	evType := storage.ChildChanged
	if added > 0 {
		evType = storage.ChildAdded
	}
	return r.publish(ctx, storage.ChangeEvent{
		Type:       evType,
		Collection: collection,
		Key:        key,
		Payload:    body,
	})
}

func (r *RemoteDB) remove(ctx context.Context, collection, key string) error {
	removed, err := r.client.HDel(ctx, collection, key).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return nil
	}
	return r.publish(ctx, storage.ChangeEvent{
		Type:       storage.ChildRemoved,
		Collection: collection,
		Key:        key,
	})
}

func (r *RemoteDB) publish(ctx context.Context, ev storage.ChangeEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, feedChannel(ev.Collection), body).Err()
}

// Subscribe opens the change feed for the given collections. The
// returned channel closes when ctx is cancelled. Undecodable feed
// messages are logged and skipped.
func (r *RemoteDB) Subscribe(ctx context.Context, collections ...string) (<-chan storage.ChangeEvent, error) {
	const op = "redisdb.RemoteDB.Subscribe"
	log := r.log.With("op", op)
	channels := make([]string, 0, len(collections))
	for _, collection := range collections {
		channels = append(channels, feedChannel(collection))
	}
	sub := r.client.Subscribe(ctx, channels...)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, err
	}
	events := make(chan storage.ChangeEvent)
	go func() {
		defer close(events)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev storage.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Warn("dropping undecodable feed message", "channel", msg.Channel, "errMsg", err.Error())
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}
