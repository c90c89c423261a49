// Package provider is the dispatch facade between callers and the data
// layer. It resolves opaque request URIs through a routing table,
// delegates to the entity builders and services, and notifies
// registered observers after every successful mutation.
package provider

import (
	"log/slog"
	"strconv"
	"sync"

	"movieweekly/proj/internal/domain/builders"
	"movieweekly/proj/internal/domain/models"
	"movieweekly/proj/internal/domain/queries"
	"movieweekly/proj/internal/services"
	"movieweekly/proj/internal/storage/cache"
)

type Provider struct {
	log      *slog.Logger
	store    *cache.Store
	services *services.Services

	obsMu     sync.RWMutex
	observers map[string]map[int]func(changedURI string)
	nextObsID int
}

func New(log *slog.Logger, store *cache.Store, services *services.Services) *Provider {
	return &Provider{
		log:       log,
		store:     store,
		services:  services,
		observers: make(map[string]map[int]func(changedURI string)),
	}
}

// RegisterObserver subscribes fn to change notifications for uri. The
// returned function unregisters it.
func (p *Provider) RegisterObserver(uri string, fn func(changedURI string)) (unregister func()) {
	p.obsMu.Lock()
	defer p.obsMu.Unlock()
	if p.observers[uri] == nil {
		p.observers[uri] = make(map[int]func(changedURI string))
	}
	id := p.nextObsID
	p.nextObsID++
	p.observers[uri][id] = fn
	return func() {
		p.obsMu.Lock()
		defer p.obsMu.Unlock()
		delete(p.observers[uri], id)
	}
}

func (p *Provider) notify(uris ...string) {
	p.obsMu.RLock()
	defer p.obsMu.RUnlock()
	for _, uri := range uris {
		for _, fn := range p.observers[uri] {
			fn(uri)
		}
	}
}

// QueryResult carries the rows of one select. At most one field is set,
// matching the kind of the request URI.
type QueryResult struct {
	Movies     []models.Movie     `json:"movies,omitempty"`
	Awards     []models.Award     `json:"awards,omitempty"`
	ViewAwards []models.ViewAward `json:"viewAwards,omitempty"`
}

// Query executes a select. Query parameters only apply to the view-award
// URI; on other URIs they are accepted but ignored (and logged), never
// rejected. A by-id miss yields an empty result, not an error.
func (p *Provider) Query(uri, uid string, params queries.ViewAwardQueryParams) (*QueryResult, error) {
	const op = "provider.Provider.Query"
	kind, id, err := Match(uri)
	if err != nil {
		return nil, err
	}
	if kind != KindViewAwardAll && params != (queries.ViewAwardQueryParams{}) {
		p.log.Info("ignoring query parameters for non view-award uri", "op", op, "uri", uri)
	}
	result := &QueryResult{}
	switch kind {
	case KindMovieAll:
		result.Movies = p.services.Movies.List()
	case KindMovieByID:
		movieID, err := strconv.Atoi(id)
		if err != nil {
			return nil, ErrUnrecognizedRequest
		}
		result.Movies = []models.Movie{}
		if movie, err := p.services.Movies.Get(movieID); err == nil {
			result.Movies = append(result.Movies, *movie)
		}
	case KindAwardAll:
		result.Awards = p.services.Awards.List()
	case KindAwardByID:
		result.Awards = []models.Award{}
		if award, err := p.services.Awards.Get(id); err == nil {
			result.Awards = append(result.Awards, *award)
		}
	case KindViewAwardAll:
		result.ViewAwards = p.store.QueryViewAwards(uid, params)
	}
	return result, nil
}

// Insert builds the entity from values and stores it, returning the
// canonical URI of the created row. Build failures surface as a
// *builders.ValidationError; they never propagate past the caller as a
// created row.
func (p *Provider) Insert(uri string, values builders.Values) (string, error) {
	kind, _, err := Match(uri)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindMovieAll:
		movie, err := builders.BuildMovie(p.log, values)
		if err != nil {
			return "", err
		}
		p.services.Movies.Save(*movie)
		p.notify(URIMovies, URIViewAwardAll)
		return MovieURI(movie.ID), nil
	case KindAwardAll:
		award, err := builders.BuildAward(p.log, values)
		if err != nil {
			return "", err
		}
		if _, err := p.services.Awards.Save(*award); err != nil {
			return "", err
		}
		p.notify(URIAwards, URIViewAwardAll)
		return AwardURI(award.ID), nil
	}
	return "", ErrUnrecognizedRequest
}

// Update replaces the row addressed by the URI. The id embedded in the
// URI must equal the id derived from the values; a mismatch is a caller
// bug and fails with ErrIDMismatch. A row that does not exist yet is
// created (update-or-insert, kept deliberately for retry idempotence).
func (p *Provider) Update(uri string, values builders.Values) (int, error) {
	kind, id, err := Match(uri)
	if err != nil {
		return 0, err
	}
	switch kind {
	case KindMovieByID:
		movieID, err := strconv.Atoi(id)
		if err != nil {
			return 0, ErrUnrecognizedRequest
		}
		movie, err := builders.BuildMovie(p.log, values)
		if err != nil {
			return 0, err
		}
		if movie.ID != movieID {
			return 0, ErrIDMismatch
		}
		affected := p.services.Movies.Save(*movie)
		p.notify(URIMovies, URIViewAwardAll)
		return affected, nil
	case KindAwardByID:
		award, err := builders.BuildAward(p.log, values)
		if err != nil {
			return 0, err
		}
		if award.ID != id {
			return 0, ErrIDMismatch
		}
		affected, err := p.services.Awards.Save(*award)
		if err != nil {
			return 0, err
		}
		p.notify(URIAwards, URIViewAwardAll)
		return affected, nil
	}
	return 0, ErrUnrecognizedRequest
}

// Delete removes the row addressed by the URI. Deleting a missing row
// reports success with a zero count, keeping the facade idempotent
// under retry.
func (p *Provider) Delete(uri string) (int, error) {
	kind, id, err := Match(uri)
	if err != nil {
		return 0, err
	}
	switch kind {
	case KindMovieByID:
		movieID, err := strconv.Atoi(id)
		if err != nil {
			return 0, ErrUnrecognizedRequest
		}
		removed := p.services.Movies.Delete(movieID)
		p.notify(URIMovies, URIViewAwardAll)
		return removed, nil
	case KindAwardByID:
		removed := p.services.Awards.Delete(id)
		p.notify(URIAwards, URIViewAwardAll)
		return removed, nil
	}
	return 0, ErrUnrecognizedRequest
}
