// Package bot is the Discord front-end: drop a job posting in a channel as a
// .html or .txt attachment and get the ATS scores and tailored resume back.
package bot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/p-shah256/tailor/internal/export"
	"github.com/p-shah256/tailor/internal/tailor"
	pkgerrors "github.com/p-shah256/tailor/pkg/errors"
	"github.com/p-shah256/tailor/pkg/types"
)

type Bot struct {
	session     *discordgo.Session
	pipeline    *tailor.Pipeline
	resumePath  string
	temperature float32
}

func New(token string, pipeline *tailor.Pipeline, resumePath string, temperature float32) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	bot := &Bot{
		session:     session,
		pipeline:    pipeline,
		resumePath:  resumePath,
		temperature: temperature,
	}
	session.AddHandler(bot.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}
	slog.Info("Bot is running...")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	for _, att := range m.Attachments {
		ext := filepath.Ext(att.Filename)
		if ext == ".html" || ext == ".txt" {
			slog.Info("Processing job posting attachment", "filename", att.Filename, "author", m.Author.Username)
			go b.processJobPosting(s, m, att.URL)
			break
		}
	}
}

func (b *Bot) processJobPosting(s *discordgo.Session, m *discordgo.MessageCreate, url string) {
	s.MessageReactionAdd(m.ChannelID, m.ID, "⏳")

	jobText, err := fetchAttachment(url)
	if err != nil {
		b.handleError(s, m, err)
		return
	}

	resumeData, err := os.ReadFile(b.resumePath)
	if err != nil {
		b.handleError(s, m, pkgerrors.NotFound("resume file "+b.resumePath))
		return
	}

	result, err := b.pipeline.Run(context.Background(), types.TailorRequest{
		ResumeText:  string(resumeData),
		JobDescText: jobText,
		JobSource:   sourceFromMessage(m.Content),
		Temperature: b.temperature,
	})
	if err != nil {
		b.handleError(s, m, err)
		return
	}

	docxData, err := export.Docx("Tailored Resume", result.TailoredResume)
	if err != nil {
		b.handleError(s, m, err)
		return
	}

	s.MessageReactionRemove(m.ChannelID, m.ID, "⏳", s.State.User.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "✅")
	content := fmt.Sprintf("**%s** at **%s**\nATS score before: %.2f%% — after: %.2f%%",
		orDash(result.Detected.JobTitle), orDash(result.Detected.Company),
		result.ScoreBefore, result.ScoreAfter)
	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: content,
		Files: []*discordgo.File{{
			Name:        export.Filename("Tailored Resume"),
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Reader:      bytes.NewReader(docxData),
		}},
	})
	if err != nil {
		slog.Error("Failed to send tailored resume", "error", err)
	}
}

func (b *Bot) handleError(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	slog.Error("Processing error", "error", err)
	s.MessageReactionRemove(m.ChannelID, m.ID, "⏳", s.State.User.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "❌")
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Error: %v", err))
}

func fetchAttachment(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", pkgerrors.External("discord cdn", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pkgerrors.External("discord cdn", fmt.Errorf("received status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pkgerrors.External("discord cdn", err)
	}
	return string(data), nil
}

// sourceFromMessage guesses the job source from the message text; the web
// form asks explicitly, a chat message usually doesn't say.
func sourceFromMessage(content string) string {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "indeed"):
		return types.SourceIndeed
	case strings.Contains(lower, "referr"):
		return types.SourceReferral
	default:
		return types.SourceLinkedIn
	}
}

func orDash(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
