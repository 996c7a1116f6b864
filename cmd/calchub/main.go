package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"calchub/internal/config"
	"calchub/internal/content"
	apphttp "calchub/internal/http"
	"calchub/internal/mail"
	"calchub/internal/queue"
	"calchub/internal/session"
	"calchub/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// Choose content backend (default: memory, seeded with the stock catalog).
	var store content.Store
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		store = repo
		logger.Info("Initialized SQLite backend", "backend", cfg.DataBackend, "path", cfg.SQLiteDBPath)
	default:
		store = content.NewMemoryStore()
		logger.Info("Initialized memory backend", "backend", cfg.DataBackend)
	}

	// Session store backs the GPA course list between requests.
	var sessions session.Store
	switch cfg.SessionBackend {
	case "redis":
		rs, err := session.NewRedisStore(context.Background(), cfg.RedisAddr)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err, "addr", cfg.RedisAddr)
			os.Exit(1)
		}
		defer rs.Close()
		sessions = rs
		logger.Info("Initialized Redis session store", "addr", cfg.RedisAddr)
	default:
		sessions = session.NewMemoryStore()
		logger.Info("Initialized in-memory session store")
	}

	// Contact form delivery: queue when AMQP is configured, otherwise
	// the mailer sends inline with the request.
	var contacts apphttp.ContactPublisher
	if cfg.AMQPURL != "" {
		client, err := queue.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		contacts = client
		logger.Info("Contact messages will be queued", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	}

	var mailer mail.Mailer
	if cfg.SendgridAPIKey != "" {
		mailer = mail.NewSendgridMailer(cfg.SendgridAPIKey, cfg.MailFromName, cfg.MailFromEmail)
		logger.Info("SendGrid mailer initialized")
	} else {
		mailer = mail.NewConsoleMailer()
		logger.Info("No SENDGRID_API_KEY - contact mail will be logged only")
	}

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Deps{
		Store:         store,
		Sessions:      sessions,
		Contacts:      contacts,
		Mailer:        mailer,
		BaseURL:       cfg.BaseURL,
		MailFromName:  cfg.MailFromName,
		MailFromEmail: cfg.MailFromEmail,
		MailToEmail:   cfg.MailToEmail,
	})

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting calchub server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
