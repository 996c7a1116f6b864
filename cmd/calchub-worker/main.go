package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"calchub/internal/config"
	"calchub/internal/mail"
	"calchub/internal/queue"
)

// calchub-worker drains the contact-message queue and delivers each
// message by email, so the web process never blocks on SendGrid.
func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting calchub-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	var mailer mail.Mailer
	if cfg.SendgridAPIKey != "" {
		mailer = mail.NewSendgridMailer(cfg.SendgridAPIKey, cfg.MailFromName, cfg.MailFromEmail)
		logger.Info("SendGrid mailer initialized")
	} else {
		mailer = mail.NewConsoleMailer()
		logger.Info("No SENDGRID_API_KEY - messages will be logged only")
	}

	client, err := queue.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := func(msg *queue.ContactMessage) error {
		return mailer.Send(ctx, mail.Message{
			FromName:  cfg.MailFromName,
			FromEmail: msg.Email,
			ToEmail:   cfg.MailToEmail,
			Subject:   "[Contact] " + msg.Subject,
			TextBody:  "From: " + msg.Name + " <" + msg.Email + ">\n\n" + msg.Body,
		})
	}

	logger.Info("Consuming contact messages", "queue", cfg.AMQPQueue)
	if err := client.ConsumeContact(ctx, handler); err != nil && err != context.Canceled {
		logger.Error("Message consumption failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
