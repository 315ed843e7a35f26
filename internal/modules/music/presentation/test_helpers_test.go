package presentation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/application/usecases"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

const (
	testGuildID        = "1"
	testUserID         = "2"
	testVoiceChannelID = snowflake.ID(3)
	testTextChannelID  = "4"
)

var errBoom = errors.New("boom")

type fakeRepository struct {
	mu     sync.Mutex
	states map[snowflake.ID]*domain.PlayerState
}

func (f *fakeRepository) Get(guildID snowflake.ID) *domain.PlayerState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.states[guildID]
}

func (f *fakeRepository) Save(state *domain.PlayerState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[state.GuildID()] = state
}

func (f *fakeRepository) Delete(guildID snowflake.ID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.states, guildID)
}

type fakePlayer struct {
	played  []*domain.Track
	stopped int
	paused  bool
	volume  int
	err     error
}

func (f *fakePlayer) Play(_ context.Context, _ snowflake.ID, track *domain.Track, _ int) error {
	if f.err != nil {
		return f.err
	}
	f.played = append(f.played, track)
	return nil
}

func (f *fakePlayer) Stop(context.Context, snowflake.ID) error {
	f.stopped++
	return f.err
}

func (f *fakePlayer) Pause(context.Context, snowflake.ID) error {
	f.paused = true
	return f.err
}

func (f *fakePlayer) Resume(context.Context, snowflake.ID) error {
	f.paused = false
	return f.err
}

func (f *fakePlayer) SetVolume(_ context.Context, _ snowflake.ID, volume int) error {
	f.volume = volume
	return f.err
}

func (f *fakePlayer) Position(snowflake.ID) time.Duration {
	return 30 * time.Second
}

type fakeVoice struct {
	joinErr  error
	leaveErr error
	left     bool
}

func (f *fakeVoice) JoinChannel(context.Context, snowflake.ID, snowflake.ID) error {
	return f.joinErr
}

func (f *fakeVoice) LeaveChannel(context.Context, snowflake.ID) error {
	f.left = true
	return f.leaveErr
}

type fakeVoiceState struct {
	channelID snowflake.ID
}

func (f *fakeVoiceState) GetUserVoiceChannel(snowflake.ID, snowflake.ID) (snowflake.ID, error) {
	return f.channelID, nil
}

// fakeResolver finds a track for any query except "nothing".
type fakeResolver struct {
	queries []string
}

func (f *fakeResolver) LoadTracks(_ context.Context, query string) (*ports.LoadResult, error) {
	f.queries = append(f.queries, query)
	if query == "ytsearch:nothing" {
		return &ports.LoadResult{Type: ports.LoadTypeEmpty}, nil
	}
	return &ports.LoadResult{
		Type: ports.LoadTypeSearch,
		Tracks: []*ports.TrackInfo{{
			Encoded:  "enc-" + query,
			Title:    "Title of " + query,
			Author:   "Author",
			Duration: 3 * time.Minute,
			URI:      "https://example.com/" + query,
		}},
	}, nil
}

type fakeStore struct {
	saved   []string
	removed []string
}

func (f *fakeStore) Save(_ context.Context, _, filename string) (string, error) {
	f.saved = append(f.saved, filename)
	return "/attachments/" + filename, nil
}

func (f *fakeStore) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type fixture struct {
	handlers   *Handlers
	repo       *fakeRepository
	player     *fakePlayer
	voice      *fakeVoice
	voiceState *fakeVoiceState
	resolver   *fakeResolver
	store      *fakeStore
}

func newFixture() *fixture {
	f := &fixture{
		repo:       &fakeRepository{states: make(map[snowflake.ID]*domain.PlayerState)},
		player:     &fakePlayer{},
		voice:      &fakeVoice{},
		voiceState: &fakeVoiceState{channelID: testVoiceChannelID},
		resolver:   &fakeResolver{},
		store:      &fakeStore{},
	}

	f.handlers = NewHandlers(
		usecases.NewVoiceChannelService(f.repo, f.voice, f.voiceState, f.store),
		usecases.NewPlaybackService(f.repo, f.player, f.store),
		usecases.NewQueueService(f.repo, f.player, f.store),
		usecases.NewTrackLoaderService(f.resolver, f.store, domain.SourceYouTube),
		nil,
	)
	return f
}

// connect puts the bot in the voice channel with tracks queued, the first
// one playing.
func (f *fixture) connect(titles ...string) *domain.PlayerState {
	state := domain.NewPlayerState(snowflake.ID(1), testVoiceChannelID, snowflake.ID(4))
	for _, title := range titles {
		state.Queue.Append(&domain.Track{
			Encoded: "enc-" + title,
			Title:   title,
			Author:  "Author",
			URI:     "https://example.com/" + title,
		})
	}
	f.repo.Save(state)
	return state
}

func newMessage(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "900",
			GuildID:   testGuildID,
			ChannelID: testTextChannelID,
			Content:   content,
			Author:    &discordgo.User{ID: testUserID, Username: "alice"},
		},
	}
}
