package usecases

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

func mockTrack(id string) *domain.Track {
	return &domain.Track{
		Identifier:  id,
		Encoded:     "encoded-" + id,
		Title:       "Track " + id,
		Author:      "Artist",
		Duration:    3 * time.Minute,
		RequesterID: snowflake.ID(123),
	}
}

func mockLocalTrack(id string) *domain.Track {
	track := mockTrack(id)
	track.LocalPath = "/attachments/" + id + ".mp3"
	return track
}

type mockRepository struct {
	states  map[snowflake.ID]*domain.PlayerState
	deleted []snowflake.ID
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		states: make(map[snowflake.ID]*domain.PlayerState),
	}
}

func (m *mockRepository) Get(guildID snowflake.ID) *domain.PlayerState {
	return m.states[guildID]
}

func (m *mockRepository) Save(state *domain.PlayerState) {
	m.states[state.GuildID()] = state
}

// createConnectedState creates a PlayerState with the given IDs and saves it to the mock repository.
// Returns the state for further modification (e.g., adding tracks).
func (m *mockRepository) createConnectedState(
	guildID, voiceChannelID, notificationChannelID snowflake.ID,
	tracks ...*domain.Track,
) *domain.PlayerState {
	state := domain.NewPlayerState(guildID, voiceChannelID, notificationChannelID)
	state.Queue.Append(tracks...)
	m.Save(state)
	return state
}

func (m *mockRepository) Delete(guildID snowflake.ID) {
	m.deleted = append(m.deleted, guildID)
	delete(m.states, guildID)
}

type mockAudioPlayer struct {
	playErr   error
	stopErr   error
	pauseErr  error
	resumeErr error
	volumeErr error
	position  time.Duration

	played        []*domain.Track
	playedVolumes []int
	stopped       int
	paused  int
	resumed int
	volume  int
}

func (m *mockAudioPlayer) Play(
	_ context.Context,
	_ snowflake.ID,
	track *domain.Track,
	volume int,
) error {
	if m.playErr != nil {
		return m.playErr
	}
	m.played = append(m.played, track)
	m.playedVolumes = append(m.playedVolumes, volume)
	return nil
}

func (m *mockAudioPlayer) Stop(_ context.Context, _ snowflake.ID) error {
	if m.stopErr != nil {
		return m.stopErr
	}
	m.stopped++
	return nil
}

func (m *mockAudioPlayer) Pause(_ context.Context, _ snowflake.ID) error {
	if m.pauseErr != nil {
		return m.pauseErr
	}
	m.paused++
	return nil
}

func (m *mockAudioPlayer) Resume(_ context.Context, _ snowflake.ID) error {
	if m.resumeErr != nil {
		return m.resumeErr
	}
	m.resumed++
	return nil
}

func (m *mockAudioPlayer) SetVolume(_ context.Context, _ snowflake.ID, volume int) error {
	if m.volumeErr != nil {
		return m.volumeErr
	}
	m.volume = volume
	return nil
}

func (m *mockAudioPlayer) Position(_ snowflake.ID) time.Duration {
	return m.position
}

func (m *mockAudioPlayer) lastPlayed() *domain.Track {
	if len(m.played) == 0 {
		return nil
	}
	return m.played[len(m.played)-1]
}

type mockVoiceConnection struct {
	joinErr  error
	leaveErr error
	joined   []snowflake.ID
	left     int
}

func (m *mockVoiceConnection) JoinChannel(_ context.Context, _, channelID snowflake.ID) error {
	if m.joinErr != nil {
		return m.joinErr
	}
	m.joined = append(m.joined, channelID)
	return nil
}

func (m *mockVoiceConnection) LeaveChannel(_ context.Context, _ snowflake.ID) error {
	if m.leaveErr != nil {
		return m.leaveErr
	}
	m.left++
	return nil
}

type mockTrackResolver struct {
	loadErr    error
	loadResult *ports.LoadResult
	queries    []string
}

func (m *mockTrackResolver) LoadTracks(_ context.Context, query string) (*ports.LoadResult, error) {
	m.queries = append(m.queries, query)
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.loadResult, nil
}

type mockVoiceStateProvider struct {
	channels map[snowflake.ID]snowflake.ID // userID -> channelID
	err      error
}

func (m *mockVoiceStateProvider) GetUserVoiceChannel(
	guildID, userID snowflake.ID,
) (snowflake.ID, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.channels[userID], nil
}

type mockAttachmentStore struct {
	saveErr error
	saved   []string
	removed []string
}

func (m *mockAttachmentStore) Save(_ context.Context, _, filename string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	path := "/attachments/" + filename
	m.saved = append(m.saved, path)
	return path, nil
}

func (m *mockAttachmentStore) Remove(path string) error {
	m.removed = append(m.removed, path)
	return nil
}
