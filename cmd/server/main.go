package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"symptomcheck/internal/analysis"
	"symptomcheck/internal/app"
	"symptomcheck/internal/config"
	"symptomcheck/internal/server"
	"symptomcheck/internal/util"
	"symptomcheck/pkg/ai"
	"symptomcheck/pkg/store"
)

func main() {
	// .env is optional; config validation decides what is actually required.
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: .env file not loaded: %v\n", err)
	}

	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := util.InitLogger(cfg.LogLevel)

	dataStore, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		fatal("failed to init store", err)
	}

	generator, err := ai.NewTextGenerator(ai.FactoryConfig{
		Provider:        cfg.Provider,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIBaseURL:   cfg.OpenAIBaseURL,
		OpenAIModel:     cfg.OpenAIModel,
		MaxTokens:       cfg.MaxTokens,
		RequestTimeout:  time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	})
	if err != nil {
		fatal("failed to init model provider", err)
	}

	appCore := app.New(dataStore, analysis.NewClient(generator))
	httpServer := server.New(server.Config{
		App:           appCore,
		AllowedOrigin: cfg.AllowedOrigin,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("symptom checker listening", "addr", addr, "provider", cfg.Provider)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
