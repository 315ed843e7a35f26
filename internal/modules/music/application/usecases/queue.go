package usecases

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// EnqueueInput contains the input for the Enqueue use case.
type EnqueueInput struct {
	GuildID               snowflake.ID
	Track                 *domain.Track
	NotificationChannelID snowflake.ID // Optional: updates notification channel if non-zero
}

// EnqueueOutput contains the result of the Enqueue use case.
type EnqueueOutput struct {
	Track          *domain.Track
	StartedPlaying bool
	Position       int // index in the queue; 0 means playing now
}

// QueueListOutput contains the result of the List use case.
type QueueListOutput struct {
	Current  *domain.Track
	Position time.Duration // playback position within Current
	Upcoming []*domain.Track
}

// QueueRemoveInput contains the input for the Remove use case.
type QueueRemoveInput struct {
	GuildID snowflake.ID
	Index   int // 1 is the first upcoming track
}

// QueueService handles queue operations.
type QueueService struct {
	repo        domain.PlayerStateRepository
	audioPlayer ports.AudioPlayer
	attachments ports.AttachmentStore
}

// NewQueueService creates a new QueueService.
func NewQueueService(
	repo domain.PlayerStateRepository,
	audioPlayer ports.AudioPlayer,
	attachments ports.AttachmentStore,
) *QueueService {
	return &QueueService{
		repo:        repo,
		audioPlayer: audioPlayer,
		attachments: attachments,
	}
}

// Enqueue adds a track and starts playback if nothing was playing. A track
// that could not be queued has its attachment file released.
func (q *QueueService) Enqueue(ctx context.Context, input EnqueueInput) (*EnqueueOutput, error) {
	state := q.repo.Get(input.GuildID)
	if state == nil {
		releaseTracks(q.attachments, input.Track)
		return nil, ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	if input.NotificationChannelID != 0 {
		state.SetNotificationChannelID(input.NotificationChannelID)
	}

	state.Queue.Append(input.Track)
	position := state.Queue.Len() - 1

	if position > 0 {
		return &EnqueueOutput{Track: input.Track, Position: position}, nil
	}

	if err := q.audioPlayer.Play(ctx, input.GuildID, input.Track, state.Volume()); err != nil {
		state.Queue.RemoveAt(position)
		releaseTracks(q.attachments, input.Track)
		return nil, err
	}
	state.SetPaused(false)

	return &EnqueueOutput{Track: input.Track, StartedPlaying: true}, nil
}

// List returns the current track and what is queued after it.
func (q *QueueService) List(_ context.Context, guildID snowflake.ID) (*QueueListOutput, error) {
	state := q.repo.Get(guildID)
	if state == nil {
		return nil, ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	current := state.CurrentTrack()
	if current == nil {
		return nil, ErrQueueEmpty
	}

	return &QueueListOutput{
		Current:  current,
		Position: q.audioPlayer.Position(guildID),
		Upcoming: state.Queue.Upcoming(),
	}, nil
}

// Remove removes an upcoming track by its position in line.
func (q *QueueService) Remove(_ context.Context, input QueueRemoveInput) (*domain.Track, error) {
	state := q.repo.Get(input.GuildID)
	if state == nil {
		return nil, ErrNotConnected
	}

	state.Lock()
	defer state.Unlock()

	if state.Queue.IsEmpty() {
		return nil, ErrQueueEmpty
	}
	if input.Index == 0 {
		return nil, ErrIsCurrentTrack
	}

	removed := state.Queue.RemoveAt(input.Index)
	if removed == nil {
		return nil, ErrInvalidPosition
	}
	releaseTracks(q.attachments, removed)

	return removed, nil
}
