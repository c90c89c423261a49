// Package prefs stores each user's display preferences (sort order and
// the four view-award filters) as opaque strings behind a generic
// accessor, with documented defaults for absent values.
package prefs

import (
	"context"
	"errors"
	"log/slog"

	"movieweekly/proj/internal/domain/queries"

	"github.com/redis/go-redis/v9"
)

// Preference keys.
const (
	KeySortOrder       = "sortOrder"
	KeyFilterGenre     = "filterGenre"
	KeyFilterWishlist  = "filterWishlist"
	KeyFilterWatched   = "filterWatched"
	KeyFilterFavourite = "filterFavourite"
)

var defaults = map[string]string{
	KeySortOrder:       queries.SortDefault,
	KeyFilterGenre:     queries.FilterAny,
	KeyFilterWishlist:  queries.FilterAny,
	KeyFilterWatched:   queries.FilterAny,
	KeyFilterFavourite: queries.FilterAny,
}

// Backend is the string-preference storage. The redis implementation is
// used in production; tests supply an in-memory one.
type Backend interface {
	Get(ctx context.Context, key, field string) (string, error)
	Set(ctx context.Context, key, field, value string) error
}

type redisBackend struct {
	client *redis.Client
}

func (b *redisBackend) Get(ctx context.Context, key, field string) (string, error) {
	value, err := b.client.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return value, err
}

func (b *redisBackend) Set(ctx context.Context, key, field, value string) error {
	return b.client.HSet(ctx, key, field, value).Err()
}

type Prefs struct {
	log     *slog.Logger
	backend Backend
}

func New(log *slog.Logger, client *redis.Client) *Prefs {
	return NewWithBackend(log, &redisBackend{client: client})
}

func NewWithBackend(log *slog.Logger, backend Backend) *Prefs {
	return &Prefs{log: log, backend: backend}
}

func prefsKey(uid string) string {
	return "users:" + uid + ":prefs"
}

// Get returns the stored preference, falling back to the documented
// default (empty for keys without one). Lookup failures degrade to the
// default as well; preferences are never load-bearing.
func (p *Prefs) Get(ctx context.Context, uid, key string) string {
	const op = "prefs.Prefs.Get"
	value, err := p.backend.Get(ctx, prefsKey(uid), key)
	if err != nil {
		p.log.Error("preference read failed, using default", "op", op, "uid", uid, "key", key, "errMsg", err.Error())
		return defaults[key]
	}
	if value == "" {
		return defaults[key]
	}
	return value
}

func (p *Prefs) Set(ctx context.Context, uid, key, value string) error {
	return p.backend.Set(ctx, prefsKey(uid), key, value)
}

// QueryParams assembles the user's saved view-award query parameters,
// defaults filled in.
func (p *Prefs) QueryParams(ctx context.Context, uid string) queries.ViewAwardQueryParams {
	return queries.ViewAwardQueryParams{
		SortOrder:       p.Get(ctx, uid, KeySortOrder),
		FilterGenre:     p.Get(ctx, uid, KeyFilterGenre),
		FilterWishlist:  p.Get(ctx, uid, KeyFilterWishlist),
		FilterWatched:   p.Get(ctx, uid, KeyFilterWatched),
		FilterFavourite: p.Get(ctx, uid, KeyFilterFavourite),
	}
}

// SaveQueryParams persists every set field of params.
func (p *Prefs) SaveQueryParams(ctx context.Context, uid string, params queries.ViewAwardQueryParams) error {
	for key, value := range map[string]string{
		KeySortOrder:       params.SortOrder,
		KeyFilterGenre:     params.FilterGenre,
		KeyFilterWishlist:  params.FilterWishlist,
		KeyFilterWatched:   params.FilterWatched,
		KeyFilterFavourite: params.FilterFavourite,
	} {
		if value == "" {
			continue
		}
		if err := p.Set(ctx, uid, key, value); err != nil {
			return err
		}
	}
	return nil
}
