package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expert-assistant/cmd"
	"expert-assistant/internal/api"
	"expert-assistant/internal/assistant"
	"expert-assistant/internal/config"
	"expert-assistant/internal/llm"
)

func main() {
	envFile := flag.String("env", "", "path to load env from")
	flag.Parse()

	log.Println("Starting expert assistant server...")

	cmd.LoadEnvFile(*envFile)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	factory, err := llm.NewFactory(cfg.Backend, cfg.BaseURL)
	if err != nil {
		log.Fatalf("error creating llm factory: %v", err)
	}

	// The credential is only required per request, not at startup.
	if os.Getenv(assistant.CredentialEnvVar) == "" {
		slog.Warn("credential not set, requests will fail until it is provided", "env", assistant.CredentialEnvVar)
	}

	dispatcher := assistant.NewDispatcher(factory, assistant.WithModel(cfg.Model))

	r := api.NewRouter(dispatcher, cfg.RequestTimeout, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	slog.Info("server listening", "port", cfg.Port, "backend", cfg.Backend, "model", cfg.Model)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.Port, err)
	}

	log.Println("Server stopped.")
}
