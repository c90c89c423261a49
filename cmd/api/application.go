package main

import (
	"log/slog"

	"movieweekly/proj/internal/api/tasks"
	"movieweekly/proj/internal/clients/omdb"
	"movieweekly/proj/internal/config"
	"movieweekly/proj/internal/prefs"
	"movieweekly/proj/internal/provider"
	"movieweekly/proj/internal/remotesync"
	"movieweekly/proj/internal/services"
	"movieweekly/proj/internal/storage/cache"

	"github.com/gorilla/schema"
)

// RemoteStore is everything the application needs from the remote side:
// the write surface the services push to and the change feed the sync
// listener consumes.
type RemoteStore interface {
	services.Remote
	remotesync.Feed
}

type Application struct {
	cfg      *config.Config
	log      *slog.Logger
	Http     *Http
	services *services.Services
	provider *provider.Provider
	listener *remotesync.Listener
	tasks    *tasks.BackgroundTasks
	omdb     *omdb.Client
	prefs    *prefs.Prefs
	decoder  *schema.Decoder
}

func NewApplication(cfg *config.Config, log *slog.Logger, store *cache.Store, remote RemoteStore, userPrefs *prefs.Prefs) *Application {
	bgTasks := tasks.New(log, cfg.Tasks.MaxWorkers, cfg.Tasks.QueueSize)
	svcs := services.New(log, store, remote, bgTasks)
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	app := &Application{
		cfg:      cfg,
		log:      log,
		services: svcs,
		provider: provider.New(log, store, svcs),
		listener: remotesync.New(log, store, remote),
		tasks:    bgTasks,
		omdb:     omdb.New(log, cfg.Omdb.ApiKey, cfg.Omdb.BaseURL, cfg.Omdb.Timeout, cfg.Omdb.RetriesCount),
		prefs:    userPrefs,
		decoder:  decoder,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
	return app
}
