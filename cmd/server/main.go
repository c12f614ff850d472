package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"keyscout/internal/config"
	"keyscout/internal/keywords"
	"keyscout/internal/metrics"
	"keyscout/internal/server"
	"keyscout/internal/source"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Load optional template and form option overrides
	yamlCfg, err := config.LoadYAMLConfig(cfg.SourcesFile)
	if err != nil {
		log.Fatalf("Failed to load sources file %s: %v", cfg.SourcesFile, err)
	}
	if yamlCfg != nil {
		log.Printf("Loaded source overrides from %s", cfg.SourcesFile)
	}

	if !cfg.HasAdsCredentials() {
		log.Println("Ads API credentials not loaded. Set GOOGLE_ADS_KEY_JSON to provide them.")
	}

	src, err := source.Build(source.Deps{Config: cfg, Templates: yamlCfg})
	if err != nil {
		log.Fatalf("Failed to build keyword source: %v", err)
	}
	log.Printf("Keyword source: %s (timeout %v)", src.Name(), cfg.SourceTimeout)

	svc := keywords.NewService(src, keywords.Options{
		Timeout:         cfg.SourceTimeout,
		DefaultCountry:  cfg.DefaultCountry,
		DefaultLanguage: cfg.DefaultLanguage,
	})

	metrics.Init()

	srv := server.New(cfg, "./views", "./static")
	srv.RegisterRoutes(svc, yamlCfg)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
