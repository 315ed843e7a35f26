package ports

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// NotificationSender defines the interface for posting playback updates to Discord channels.
type NotificationSender interface {
	// SendNowPlaying announces a track that started on its own.
	SendNowPlaying(channelID snowflake.ID, track *domain.Track) error

	// SendQueueEnded announces that the last track finished.
	SendQueueEnded(channelID snowflake.ID, lastTitle string) error
}
