package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/chorus-search/chorus/internal/adapter"
	"github.com/chorus-search/chorus/internal/answer"
	"github.com/chorus-search/chorus/internal/api"
	"github.com/chorus-search/chorus/internal/config"
	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/search"
	"github.com/chorus-search/chorus/internal/store"
	"github.com/chorus-search/chorus/internal/tokencache"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(os.Stdout, cfg.LogLevel)

	logger.Info("chorus: starting",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"settings_path", cfg.SettingsPath,
	)

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		log.Fatalf("failed to load engine settings: %v", err)
	}

	registry := engine.NewRegistry()
	for _, es := range settings.Engines {
		eng, err := adapter.FromSetting(es)
		if err != nil {
			log.Fatalf("failed to build engine %q: %v", es.Name, err)
		}
		registry.Register(eng)
	}
	logger.Info("engines registered", "count", len(registry.Names()))

	db, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 8,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	executor := search.NewExecutor(client, logger)
	orchestrator := search.NewOrchestrator(registry, executor, answer.Defaults(), logger)
	tokens := tokencache.New(cfg.TokenTTL)

	srv := api.NewServer(cfg.ListenAddr, registry, orchestrator, db, tokens, client, cfg.MaxWait, logger)

	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
