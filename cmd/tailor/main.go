package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/p-shah256/tailor/internal/api"
	"github.com/p-shah256/tailor/internal/cleaner"
	"github.com/p-shah256/tailor/internal/config"
	"github.com/p-shah256/tailor/internal/extraction"
	"github.com/p-shah256/tailor/internal/llm"
	"github.com/p-shah256/tailor/internal/tailor"
	"github.com/p-shah256/tailor/pkg/logger"
)

func main() {
	logger.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	slog.Info("Starting Resume Tailor web application...")

	cfg, err := config.Load(os.Getenv("TAILOR_CONFIG"))
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	geminiKey := os.Getenv("GEMINI_KEY")
	if geminiKey == "" {
		slog.Error("Gemini API key not found in environment variables")
		os.Exit(1)
	}

	llmClient, err := llm.New(context.Background(), geminiKey, cfg.Model)
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err)
		os.Exit(1)
	}
	defer llmClient.Close()

	pipeline := tailor.New(llmClient,
		extraction.New(cfg.CompanyOverrides),
		cleaner.New(cfg.CutoffMarkers))

	server := api.NewServer(cfg.Port, pipeline, cfg.DefaultTemperature)
	slog.Info("Server initialized", "port", cfg.Port, "model", cfg.Model)
	if err := server.Start(); err != nil {
		slog.Error("Error starting API server", "error", err)
		os.Exit(1)
	}
}
