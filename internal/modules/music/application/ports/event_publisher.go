package ports

import "github.com/sglre6355/muse/internal/modules/music/domain"

// EventPublisher defines the interface for publishing playback events.
type EventPublisher interface {
	PublishTrackEnded(event domain.TrackEndedEvent)
}
