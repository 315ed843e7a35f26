package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// SkipOutput contains the result of the Skip use case.
type SkipOutput struct {
	SkippedTrack *domain.Track
	NextTrack    *domain.Track // nil if the queue ran out
}

// SetLoopModeInput contains the input for the SetLoopMode use case.
type SetLoopModeInput struct {
	GuildID snowflake.ID
	Mode    string // "current", "queue", "disable"; anything else toggles
}

// SetVolumeInput contains the input for the SetVolume use case.
type SetVolumeInput struct {
	GuildID snowflake.ID
	Volume  int
}

// TrackEndInput describes a track-end event from the audio node.
type TrackEndInput struct {
	GuildID snowflake.ID
	Reason  domain.TrackEndReason
	Title   string // title the node reported for the ended track
}

// TrackEndOutput tells the caller what to announce after a track ended.
type TrackEndOutput struct {
	NotificationChannelID snowflake.ID
	NextTrack             *domain.Track // started by this call; nil otherwise
	Replayed              bool          // NextTrack is the track that just ended
	QueueEnded            bool
	LastTitle             string // set when QueueEnded
}

// PlaybackService handles playback operations.
type PlaybackService struct {
	repo        domain.PlayerStateRepository
	audioPlayer ports.AudioPlayer
	attachments ports.AttachmentStore
}

// NewPlaybackService creates a new PlaybackService.
func NewPlaybackService(
	repo domain.PlayerStateRepository,
	audioPlayer ports.AudioPlayer,
	attachments ports.AttachmentStore,
) *PlaybackService {
	return &PlaybackService{
		repo:        repo,
		audioPlayer: audioPlayer,
		attachments: attachments,
	}
}

// Pause pauses the current playback and returns the paused track.
func (p *PlaybackService) Pause(ctx context.Context, guildID snowflake.ID) (*domain.Track, error) {
	state := p.repo.Get(guildID)
	if state == nil {
		return nil, ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	current := state.CurrentTrack()
	if current == nil {
		return nil, ErrNotPlaying
	}
	if state.IsPaused() {
		return nil, ErrAlreadyPaused
	}

	if err := p.audioPlayer.Pause(ctx, guildID); err != nil {
		return nil, err
	}
	state.SetPaused(true)

	return current, nil
}

// Resume resumes the paused playback and returns the resumed track.
func (p *PlaybackService) Resume(ctx context.Context, guildID snowflake.ID) (*domain.Track, error) {
	state := p.repo.Get(guildID)
	if state == nil {
		return nil, ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	current := state.CurrentTrack()
	if current == nil {
		return nil, ErrNotPlaying
	}
	if !state.IsPaused() {
		return nil, ErrNotPaused
	}

	if err := p.audioPlayer.Resume(ctx, guildID); err != nil {
		return nil, err
	}
	state.SetPaused(false)

	return current, nil
}

// Skip drops the current track and plays the next one. A track loop does
// not replay the skipped track; a queue loop moves it to the end.
func (p *PlaybackService) Skip(ctx context.Context, guildID snowflake.ID) (*SkipOutput, error) {
	state := p.repo.Get(guildID)
	if state == nil {
		return nil, ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	skipped := state.CurrentTrack()
	if skipped == nil {
		return nil, ErrNotPlaying
	}

	mode := state.LoopMode()
	if mode == domain.LoopModeTrack {
		mode = domain.LoopModeNone
	}

	next, dropped := state.Queue.Advance(mode)
	releaseTracks(p.attachments, dropped)
	state.SetPaused(false)

	if next == nil {
		if err := p.audioPlayer.Stop(ctx, guildID); err != nil {
			return nil, err
		}
		return &SkipOutput{SkippedTrack: skipped}, nil
	}

	if err := p.audioPlayer.Play(ctx, guildID, next, state.Volume()); err != nil {
		return nil, err
	}

	return &SkipOutput{SkippedTrack: skipped, NextTrack: next}, nil
}

// Stop clears the queue and stops the player.
func (p *PlaybackService) Stop(ctx context.Context, guildID snowflake.ID) error {
	state := p.repo.Get(guildID)
	if state == nil {
		return ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	removed := state.Queue.Clear()
	state.SetPaused(false)
	releaseTracks(p.attachments, removed...)

	return p.audioPlayer.Stop(ctx, guildID)
}

// SetLoopMode sets the loop mode from user input and returns the new mode.
// Input that names no mode toggles between current and disable.
func (p *PlaybackService) SetLoopMode(
	_ context.Context,
	input SetLoopModeInput,
) (domain.LoopMode, error) {
	state := p.repo.Get(input.GuildID)
	if state == nil {
		return domain.LoopModeNone, ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	if state.CurrentTrack() == nil {
		return domain.LoopModeNone, ErrNotPlaying
	}

	mode, ok := domain.ParseLoopMode(input.Mode)
	if !ok {
		mode = state.LoopMode().Toggle()
	}
	state.SetLoopMode(mode)

	return mode, nil
}

// SetVolume sets the player volume for the current and following tracks.
func (p *PlaybackService) SetVolume(ctx context.Context, input SetVolumeInput) error {
	if input.Volume < 1 || input.Volume > 100 {
		return ErrInvalidVolume
	}

	state := p.repo.Get(input.GuildID)
	if state == nil {
		return ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	if state.CurrentTrack() == nil {
		return ErrNotPlaying
	}

	if err := p.audioPlayer.SetVolume(ctx, input.GuildID, input.Volume); err != nil {
		return err
	}
	state.SetVolume(input.Volume)

	return nil
}

// HandleTrackEnd advances the queue after the node reports a track ended
// and starts the next track when there is one.
func (p *PlaybackService) HandleTrackEnd(
	ctx context.Context,
	input TrackEndInput,
) (*TrackEndOutput, error) {
	state := p.repo.Get(input.GuildID)
	if state == nil {
		return nil, ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	output := &TrackEndOutput{NotificationChannelID: state.NotificationChannelID()}

	switch {
	case input.Reason.AdvancesQueue():
		last := state.CurrentTrack()
		if last == nil {
			// Stop already cleared the queue
			return output, nil
		}

		mode := state.LoopMode()
		if input.Reason == domain.TrackEndLoadFailed && mode == domain.LoopModeTrack {
			// Replaying a track that cannot load would fail forever
			mode = domain.LoopModeNone
		}

		next, dropped := state.Queue.Advance(mode)
		releaseTracks(p.attachments, dropped)

		if next == nil {
			state.SetPaused(false)
			output.QueueEnded = true
			output.LastTitle = last.Title
			return output, nil
		}

		if err := p.audioPlayer.Play(ctx, input.GuildID, next, state.Volume()); err != nil {
			return nil, fmt.Errorf("failed to play next track: %w", err)
		}
		state.SetPaused(false)
		output.NextTrack = next
		output.Replayed = next == last

	case input.Reason == domain.TrackEndStopped:
		if state.Queue.IsEmpty() {
			output.QueueEnded = true
			output.LastTitle = input.Title
		}

	default:
		slog.Debug("ignored track end", "guild", input.GuildID, "reason", input.Reason)
	}

	return output, nil
}
