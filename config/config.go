package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	CatalogFile     string        `env:"CATALOG_FILE"`
	StateDBPath     string        `env:"STATE_DB_PATH" envDefault:":memory:"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Session SessionConfig
	Lead    LeadConfig

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool `env:"-"`
}

type SessionConfig struct {
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	Secure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`

	// Generated is set when no secret was configured and a random one was made.
	Generated bool `env:"-"`
}

type LeadConfig struct {
	Inbox           string        `env:"LEAD_INBOX"`
	FromName        string        `env:"LEAD_FROM_NAME" envDefault:"StreamMax IPTV"`
	FromEmail       string        `env:"LEAD_FROM_EMAIL"`
	EmailProvider   string        `env:"EMAIL_PROVIDER" envDefault:"sendgrid"`
	SendGridAPIKey  string        `env:"SENDGRID_API_KEY"`
	MailgunDomain   string        `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey   string        `env:"MAILGUN_API_KEY"`
	SlackWebhookURL string        `env:"SLACK_WEBHOOK_URL"`
	Timeout         time.Duration `env:"LEAD_TIMEOUT" envDefault:"10s"`
}

// Sender returns the From address, falling back to the inbox.
func (l LeadConfig) Sender() string {
	if l.FromEmail != "" {
		return l.FromEmail
	}
	return l.Inbox
}

// Load reads envFile (if it exists) into the process environment and then
// parses the environment. A missing .env file is not an error.
func Load(envFile string) (*Config, error) {
	loaded := false
	if envFile != "" {
		err := godotenv.Load(envFile)
		switch {
		case err == nil:
			loaded = true
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	cfg.EnvFileLoaded = loaded

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	switch cfg.Lead.EmailProvider {
	case "sendgrid", "mailgun":
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q (want sendgrid or mailgun)", cfg.Lead.EmailProvider)
	}

	if cfg.Session.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generating session secret: %w", err)
		}
		cfg.Session.Secret = secret
		cfg.Session.Generated = true
	}

	return cfg, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
