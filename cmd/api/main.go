package main

import (
	"context"
	"flag"
	"os"

	"movieweekly/proj/internal/config"
	"movieweekly/proj/internal/lib/logger"
	"movieweekly/proj/internal/prefs"
	"movieweekly/proj/internal/storage/cache"
	"movieweekly/proj/internal/storage/redisdb"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	godotenv.Load()
	cfgPath := flag.String("config", "config/local.yml", "path to config file")

	flag.Parse()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)
	client, err := redisdb.Connect(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		panic(err)
	}
	defer client.Close()
	log.Info("remote store connection established", "addr", cfg.Redis.Addr)

	store := cache.New(log)
	remote := redisdb.New(log, client)
	app := NewApplication(cfg, log, store, remote, prefs.New(log, client))
	app.tasks.Run()
	if err := app.listener.Attach(context.Background()); err != nil {
		panic(err)
	}

	if err := app.serve(); err != nil {
		log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
	app.listener.Detach()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	app.tasks.Shutdown(shutdownCtx)
}
