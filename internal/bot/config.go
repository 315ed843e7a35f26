package bot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,notEmpty"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
	LogLevel      string `env:"LOG_LEVEL"      envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT"     envDefault:"json"`

	// CommandRate is the number of commands per second a single user may
	// issue once the burst is used up. Zero or less disables throttling.
	CommandRate  float64 `env:"COMMAND_RATE"  envDefault:"1"`
	CommandBurst int     `env:"COMMAND_BURST" envDefault:"3"`
}

// LoadConfig loads configuration from environment variables.
// Returns an error if required fields are missing.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.CommandPrefix) == "" {
		return errors.New("COMMAND_PREFIX must not be blank")
	}
	if strings.ContainsAny(c.CommandPrefix, " \t\n") {
		return fmt.Errorf("COMMAND_PREFIX must not contain whitespace: %q", c.CommandPrefix)
	}
	if c.CommandRate > 0 && c.CommandBurst < 1 {
		return fmt.Errorf("COMMAND_BURST must be at least 1, got %d", c.CommandBurst)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// NewLogger builds the process logger described by the configuration.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
