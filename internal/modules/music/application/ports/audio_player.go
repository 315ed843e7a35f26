package ports

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// AudioPlayer defines the interface for controlling a guild's playback.
type AudioPlayer interface {
	// Play replaces whatever is playing with track at volume (1 to 100)
	// and unpauses the player.
	Play(ctx context.Context, guildID snowflake.ID, track *domain.Track, volume int) error

	// Stop unloads the current track.
	Stop(ctx context.Context, guildID snowflake.ID) error

	Pause(ctx context.Context, guildID snowflake.ID) error
	Resume(ctx context.Context, guildID snowflake.ID) error

	// SetVolume sets the player volume, 1 to 100.
	SetVolume(ctx context.Context, guildID snowflake.ID, volume int) error

	// Position returns how far into the current track playback is.
	Position(guildID snowflake.ID) time.Duration
}
