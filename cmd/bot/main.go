package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/p-shah256/tailor/internal/bot"
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

	slog.Info("Starting bot...")

	cfg, err := config.Load(os.Getenv("TAILOR_CONFIG"))
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	botToken := os.Getenv("DISCORD_BOT_TOKEN")
	if botToken == "" {
		slog.Error("Bot token not found in environment variables")
		os.Exit(1)
	}
	geminiKey := os.Getenv("GEMINI_KEY")
	if geminiKey == "" {
		slog.Error("Gemini API key not found in environment variables")
		os.Exit(1)
	}
	resumePath := os.Getenv("RESUME_PATH")
	if resumePath == "" {
		resumePath = "./resume.txt"
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

	b, err := bot.New(botToken, pipeline, resumePath, cfg.DefaultTemperature)
	if err != nil {
		slog.Error("Error creating Discord session", "error", err)
		os.Exit(1)
	}
	if err := b.Start(); err != nil {
		slog.Error("Error opening Discord session", "error", err)
		os.Exit(1)
	}
	defer b.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	slog.Info("Shutting down")
}
