package music

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// Config holds the music module configuration.
type Config struct {
	LavalinkAddress  string `env:"LAVALINK_ADDRESS,notEmpty"`
	LavalinkPassword string `env:"LAVALINK_PASSWORD,notEmpty"`
	LavalinkSecure   bool   `env:"LAVALINK_SECURE"    envDefault:"false"`
	LavalinkNodeName string `env:"LAVALINK_NODE_NAME" envDefault:"main"`

	// AttachmentDir must be readable by the Lavalink node under the same path.
	AttachmentDir string `env:"ATTACHMENT_DIR" envDefault:"./attachments"`
	SearchSource  string `env:"SEARCH_SOURCE"  envDefault:"ytsearch"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if _, ok := domain.ParseSearchSource(cfg.SearchSource); !ok {
		return nil, fmt.Errorf("SEARCH_SOURCE must be ytsearch, ytmsearch or scsearch, got %q", cfg.SearchSource)
	}
	if cfg.AttachmentDir == "" {
		return nil, errors.New("ATTACHMENT_DIR must not be empty")
	}

	return cfg, nil
}

func (c *Config) searchSource() domain.SearchSource {
	source, _ := domain.ParseSearchSource(c.SearchSource)
	return source
}
