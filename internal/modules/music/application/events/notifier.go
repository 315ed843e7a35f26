package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/application/usecases"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// trackEndTimeout bounds the Lavalink and Discord calls made for one event.
// The guild's state stays locked while the next track starts.
const trackEndTimeout = 30 * time.Second

// TrackEndHandler advances a guild's queue after a track ends.
type TrackEndHandler interface {
	HandleTrackEnd(ctx context.Context, input usecases.TrackEndInput) (*usecases.TrackEndOutput, error)
}

// VoiceLeaver disconnects the bot from a guild's voice channel.
type VoiceLeaver interface {
	Leave(ctx context.Context, input usecases.LeaveInput) (*usecases.LeaveOutput, error)
}

// TrackEndNotifier reacts to track-end events: it starts the next track and
// announces it, or announces that the queue ended and leaves voice.
type TrackEndNotifier struct {
	playback TrackEndHandler
	voice    VoiceLeaver
	sender   ports.NotificationSender
	bus      *Bus

	wg   sync.WaitGroup
	done chan struct{}
}

// NewTrackEndNotifier creates a new TrackEndNotifier.
func NewTrackEndNotifier(
	playback TrackEndHandler,
	voice VoiceLeaver,
	sender ports.NotificationSender,
	bus *Bus,
) *TrackEndNotifier {
	return &TrackEndNotifier{
		playback: playback,
		voice:    voice,
		sender:   sender,
		bus:      bus,
		done:     make(chan struct{}),
	}
}

// Start begins consuming events in a background goroutine.
func (n *TrackEndNotifier) Start(ctx context.Context) {
	n.wg.Add(1)

	go func() {
		defer n.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-n.done:
				return
			case event, ok := <-n.bus.TrackEnded():
				if !ok {
					return
				}
				n.handleTrackEnded(ctx, event)
			}
		}
	}()

	slog.Debug("track end notifier started")
}

// Stop stops the notifier and waits for its goroutine to finish.
func (n *TrackEndNotifier) Stop() {
	close(n.done)
	n.wg.Wait()
	slog.Debug("track end notifier stopped")
}

func (n *TrackEndNotifier) handleTrackEnded(ctx context.Context, event domain.TrackEndedEvent) {
	ctx, cancel := context.WithTimeout(ctx, trackEndTimeout)
	defer cancel()

	output, err := n.playback.HandleTrackEnd(ctx, usecases.TrackEndInput{
		GuildID: event.GuildID,
		Reason:  event.Reason,
		Title:   event.Title,
	})
	if errors.Is(err, usecases.ErrNotConnected) {
		slog.Debug("track ended after leaving voice", "guild", event.GuildID)
		return
	}
	if err != nil {
		slog.Error("failed to handle track end",
			"guild", event.GuildID,
			"reason", event.Reason,
			"error", err,
		)
		return
	}

	switch {
	case output.Replayed:
		slog.Debug("replaying looped track", "guild", event.GuildID, "track", output.NextTrack.Title)

	case output.NextTrack != nil:
		if err := n.sender.SendNowPlaying(output.NotificationChannelID, output.NextTrack); err != nil {
			slog.Error("failed to send now playing notification",
				"guild", event.GuildID,
				"channel", output.NotificationChannelID,
				"error", err,
			)
		}

	case output.QueueEnded:
		if err := n.sender.SendQueueEnded(output.NotificationChannelID, output.LastTitle); err != nil {
			slog.Error("failed to send queue ended notification",
				"guild", event.GuildID,
				"channel", output.NotificationChannelID,
				"error", err,
			)
		}

		if _, err := n.voice.Leave(ctx, usecases.LeaveInput{GuildID: event.GuildID}); err != nil &&
			!errors.Is(err, usecases.ErrNotConnected) {
			slog.Error("failed to leave voice after queue ended", "guild", event.GuildID, "error", err)
		}
	}
}
