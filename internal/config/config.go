package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port    string
	BaseURL string

	// Database
	SQLiteDBPath string

	// Backend selection
	DataBackend    string
	SessionBackend string

	// Redis (session backend)
	RedisAddr string

	// AMQP (contact form queue)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Mail (contact form delivery)
	SendgridAPIKey string
	MailFromName   string
	MailFromEmail  string
	MailToEmail    string
}

func Load() *Config {
	cfg := &Config{
		Port:    getEnv("PORT", "8081"),
		BaseURL: getEnv("BASE_URL", "http://localhost:8081"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/calchub.db"),

		DataBackend:    getEnv("DATA_BACKEND", "memory"),
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "calchub"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "contact_messages"),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		MailFromName:   getEnv("MAIL_FROM_NAME", "Calculator Hub"),
		MailFromEmail:  getEnv("MAIL_FROM_EMAIL", "noreply@calchub.local"),
		MailToEmail:    getEnv("MAIL_TO_EMAIL", "support@calchub.local"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate base URL
	if parsedURL, err := url.Parse(c.BaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid base URL '%s': %v", c.BaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	// Validate data backend
	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate session backend
	validSessionBackends := []string{"memory", "redis"}
	isValidSession := false
	for _, backend := range validSessionBackends {
		if c.SessionBackend == backend {
			isValidSession = true
			break
		}
	}
	if !isValidSession {
		errors = append(errors, fmt.Sprintf("invalid session backend '%s': must be one of %v", c.SessionBackend, validSessionBackends))
	}

	if c.SessionBackend == "redis" && c.RedisAddr == "" {
		errors = append(errors, "Redis address cannot be empty when using redis session backend")
	}

	// Validate SQLite configuration if backend is sqlite
	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Validate mail addresses
	if _, err := mail.ParseAddress(c.MailFromEmail); err != nil {
		errors = append(errors, fmt.Sprintf("invalid mail from address '%s': %v", c.MailFromEmail, err))
	}
	if _, err := mail.ParseAddress(c.MailToEmail); err != nil {
		errors = append(errors, fmt.Sprintf("invalid mail to address '%s': %v", c.MailToEmail, err))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
