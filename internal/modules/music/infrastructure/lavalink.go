package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// voiceConnectionTimeout is the maximum time to wait for voice connection to be established.
const voiceConnectionTimeout = 10 * time.Second

var errNoNode = errors.New("no available Lavalink node")

// pendingVoiceConnection closes ready once both voice events for a join arrived.
type pendingVoiceConnection struct {
	mu             sync.Mutex
	hasVoiceState  bool
	hasVoiceServer bool
	ready          chan struct{}
}

func newPendingVoiceConnection() *pendingVoiceConnection {
	return &pendingVoiceConnection{ready: make(chan struct{})}
}

func (p *pendingVoiceConnection) onEvent(isVoiceState bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if isVoiceState {
		p.hasVoiceState = true
	} else {
		p.hasVoiceServer = true
	}

	if p.hasVoiceState && p.hasVoiceServer {
		select {
		case <-p.ready:
		default:
			close(p.ready)
		}
	}
}

// voiceEventBuffer holds one half of a voice handshake until the other half
// arrives, so Lavalink never sees a partial voice state.
type voiceEventBuffer struct {
	mu sync.Mutex

	hasVoiceState bool
	channelID     *snowflake.ID
	sessionID     string

	hasVoiceServer bool
	token          string
	endpoint       string
}

func (b *voiceEventBuffer) setVoiceState(channelID *snowflake.ID, sessionID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.hasVoiceState = true
	b.channelID = channelID
	b.sessionID = sessionID

	return b.hasVoiceServer
}

func (b *voiceEventBuffer) setVoiceServer(token, endpoint string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.hasVoiceServer = true
	b.token = token
	b.endpoint = endpoint

	return b.hasVoiceState
}

// take returns the buffered handshake and empties the buffer.
func (b *voiceEventBuffer) take() (channelID *snowflake.ID, sessionID, token, endpoint string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	channelID, sessionID, token, endpoint = b.channelID, b.sessionID, b.token, b.endpoint
	*b = voiceEventBuffer{}

	return
}

// LavalinkConfig contains Lavalink connection configuration.
type LavalinkConfig struct {
	NodeName string
	Address  string
	Password string
	Secure   bool
}

// LavalinkAdapter drives a Lavalink node through DisGoLink. It implements
// the voice, playback and track loading ports.
type LavalinkAdapter struct {
	link      disgolink.Client
	session   *discordgo.Session
	botID     snowflake.ID
	publisher ports.EventPublisher

	pendingMu sync.Mutex
	pending   map[snowflake.ID]*pendingVoiceConnection

	voiceBufferMu sync.Mutex
	voiceBuffers  map[snowflake.ID]*voiceEventBuffer
}

// NewLavalinkAdapter connects to the configured node. Track end events are
// forwarded to publisher.
func NewLavalinkAdapter(
	ctx context.Context,
	session *discordgo.Session,
	publisher ports.EventPublisher,
	config LavalinkConfig,
) (*LavalinkAdapter, error) {
	botID, err := snowflake.Parse(session.State.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bot ID: %w", err)
	}

	adapter := &LavalinkAdapter{
		session:      session,
		botID:        botID,
		publisher:    publisher,
		pending:      make(map[snowflake.ID]*pendingVoiceConnection),
		voiceBuffers: make(map[snowflake.ID]*voiceEventBuffer),
	}

	adapter.link = disgolink.New(botID,
		disgolink.WithListenerFunc(adapter.onTrackStart),
		disgolink.WithListenerFunc(adapter.onTrackEnd),
		disgolink.WithListenerFunc(adapter.onTrackException),
		disgolink.WithListenerFunc(adapter.onTrackStuck),
	)

	node, err := adapter.link.AddNode(ctx, disgolink.NodeConfig{
		Name:     config.NodeName,
		Address:  config.Address,
		Password: config.Password,
		Secure:   config.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add Lavalink node: %w", err)
	}

	slog.Info("connected to Lavalink", "node", node.Config().Name, "address", config.Address)

	return adapter, nil
}

// Close disconnects from all Lavalink nodes.
func (c *LavalinkAdapter) Close() {
	c.link.Close()
}

// JoinChannel connects to a voice channel.
// It waits for both VoiceStateUpdate and VoiceServerUpdate events before returning.
func (c *LavalinkAdapter) JoinChannel(ctx context.Context, guildID, channelID snowflake.ID) error {
	pending := newPendingVoiceConnection()

	c.pendingMu.Lock()
	c.pending[guildID] = pending
	c.pendingMu.Unlock()

	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, guildID)
		c.pendingMu.Unlock()
	}()

	err := c.session.ChannelVoiceJoinManual(guildID.String(), channelID.String(), false, true)
	if err != nil {
		return fmt.Errorf("failed to join voice channel: %w", err)
	}

	select {
	case <-pending.ready:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for voice connection: %w", ctx.Err())
	case <-time.After(voiceConnectionTimeout):
		return fmt.Errorf("timeout waiting for voice connection")
	}
}

// LeaveChannel destroys the guild's player and disconnects from voice.
func (c *LavalinkAdapter) LeaveChannel(ctx context.Context, guildID snowflake.ID) error {
	if player := c.link.ExistingPlayer(guildID); player != nil {
		if err := player.Destroy(ctx); err != nil {
			slog.Warn("failed to destroy player", "guild", guildID, "error", err)
		}
	}

	err := c.session.ChannelVoiceJoinManual(guildID.String(), "", false, false)
	if err != nil {
		return fmt.Errorf("failed to leave voice channel: %w", err)
	}
	return nil
}

// Play starts track, replacing whatever was loaded, and unpauses the player.
// The volume is sent along so a recreated player keeps the guild's setting.
func (c *LavalinkAdapter) Play(
	ctx context.Context,
	guildID snowflake.ID,
	track *domain.Track,
	volume int,
) error {
	player := c.link.Player(guildID)

	// WithEncodedTrack avoids sending userData:null
	err := player.Update(ctx,
		lavalink.WithEncodedTrack(track.Encoded),
		lavalink.WithPaused(false),
		lavalink.WithVolume(volume),
	)
	if err != nil {
		return fmt.Errorf("failed to play track: %w", err)
	}

	return nil
}

// Stop unloads the current track.
func (c *LavalinkAdapter) Stop(ctx context.Context, guildID snowflake.ID) error {
	player := c.link.ExistingPlayer(guildID)
	if player == nil {
		return nil
	}

	if err := player.Update(ctx, lavalink.WithNullTrack()); err != nil {
		return fmt.Errorf("failed to stop playback: %w", err)
	}

	return nil
}

// Pause pauses the current playback.
func (c *LavalinkAdapter) Pause(ctx context.Context, guildID snowflake.ID) error {
	player := c.link.Player(guildID)

	if err := player.Update(ctx, lavalink.WithPaused(true)); err != nil {
		return fmt.Errorf("failed to pause playback: %w", err)
	}

	return nil
}

// Resume resumes the current playback.
func (c *LavalinkAdapter) Resume(ctx context.Context, guildID snowflake.ID) error {
	player := c.link.Player(guildID)

	if err := player.Update(ctx, lavalink.WithPaused(false)); err != nil {
		return fmt.Errorf("failed to resume playback: %w", err)
	}

	return nil
}

// SetVolume sets the player's volume. Lavalink keeps it for later tracks.
func (c *LavalinkAdapter) SetVolume(ctx context.Context, guildID snowflake.ID, volume int) error {
	player := c.link.Player(guildID)

	if err := player.Update(ctx, lavalink.WithVolume(volume)); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}

	return nil
}

// Position returns the playback position of the current track.
func (c *LavalinkAdapter) Position(guildID snowflake.ID) time.Duration {
	player := c.link.ExistingPlayer(guildID)
	if player == nil {
		return 0
	}
	return toDuration(player.Position())
}

// LoadTracks resolves query on the least loaded node.
func (c *LavalinkAdapter) LoadTracks(ctx context.Context, query string) (*ports.LoadResult, error) {
	node := c.link.BestNode()
	if node == nil {
		return nil, errNoNode
	}

	result, err := node.LoadTracks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks: %w", err)
	}

	return convertLoadResult(result), nil
}

func convertLoadResult(result *lavalink.LoadResult) *ports.LoadResult {
	switch data := result.Data.(type) {
	case lavalink.Track:
		return &ports.LoadResult{
			Type:   ports.LoadTypeTrack,
			Tracks: []*ports.TrackInfo{convertTrack(data)},
		}

	case lavalink.Playlist:
		tracks := make([]*ports.TrackInfo, len(data.Tracks))
		for i, track := range data.Tracks {
			tracks[i] = convertTrack(track)
		}
		return &ports.LoadResult{
			Type:         ports.LoadTypePlaylist,
			Tracks:       tracks,
			PlaylistName: data.Info.Name,
		}

	case lavalink.Search:
		tracks := make([]*ports.TrackInfo, len(data))
		for i, track := range data {
			tracks[i] = convertTrack(track)
		}
		return &ports.LoadResult{
			Type:   ports.LoadTypeSearch,
			Tracks: tracks,
		}

	case lavalink.Exception:
		return &ports.LoadResult{
			Type:  ports.LoadTypeError,
			Error: data.Message,
		}

	default:
		return &ports.LoadResult{Type: ports.LoadTypeEmpty}
	}
}

func convertTrack(track lavalink.Track) *ports.TrackInfo {
	info := track.Info
	return &ports.TrackInfo{
		Identifier: info.Identifier,
		Encoded:    track.Encoded,
		Title:      info.Title,
		Author:     info.Author,
		Duration:   toDuration(info.Length),
		URI:        derefString(info.URI),
		ArtworkURL: derefString(info.ArtworkURL),
		SourceName: info.SourceName,
		IsStream:   info.IsStream,
	}
}

func toDuration(d lavalink.Duration) time.Duration {
	return time.Duration(d) * time.Millisecond
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OnVoiceServerUpdate handles Discord voice server updates.
func (c *LavalinkAdapter) OnVoiceServerUpdate(event *discordgo.VoiceServerUpdate) {
	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil {
		slog.Error("failed to parse guild ID in voice server update", "error", err)
		return
	}

	buffer := c.voiceBuffer(guildID)
	if buffer.setVoiceServer(event.Token, event.Endpoint) {
		c.forwardBufferedVoiceEvents(guildID, buffer)
	}

	c.signalPending(guildID, false)
}

// OnVoiceStateUpdate handles Discord voice state updates of the bot itself.
func (c *LavalinkAdapter) OnVoiceStateUpdate(event *discordgo.VoiceStateUpdate) {
	if event.UserID != c.botID.String() {
		return
	}

	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil {
		slog.Error("failed to parse guild ID in voice state update", "error", err)
		return
	}

	channelID, err := parseOptionalID(event.ChannelID)
	if err != nil {
		slog.Error("failed to parse channel ID in voice state update", "error", err)
		return
	}

	// A disconnect needs no server update.
	if channelID == nil {
		c.link.OnVoiceStateUpdate(context.Background(), guildID, nil, event.SessionID)
		c.clearVoiceBuffer(guildID)
		return
	}

	buffer := c.voiceBuffer(guildID)
	if buffer.setVoiceState(channelID, event.SessionID) {
		c.forwardBufferedVoiceEvents(guildID, buffer)
	}

	c.signalPending(guildID, true)
}

func (c *LavalinkAdapter) signalPending(guildID snowflake.ID, isVoiceState bool) {
	c.pendingMu.Lock()
	pending := c.pending[guildID]
	c.pendingMu.Unlock()

	if pending != nil {
		pending.onEvent(isVoiceState)
	}
}

func (c *LavalinkAdapter) voiceBuffer(guildID snowflake.ID) *voiceEventBuffer {
	c.voiceBufferMu.Lock()
	defer c.voiceBufferMu.Unlock()

	buffer, ok := c.voiceBuffers[guildID]
	if !ok {
		buffer = &voiceEventBuffer{}
		c.voiceBuffers[guildID] = buffer
	}
	return buffer
}

func (c *LavalinkAdapter) clearVoiceBuffer(guildID snowflake.ID) {
	c.voiceBufferMu.Lock()
	defer c.voiceBufferMu.Unlock()
	delete(c.voiceBuffers, guildID)
}

func (c *LavalinkAdapter) forwardBufferedVoiceEvents(guildID snowflake.ID, buffer *voiceEventBuffer) {
	channelID, sessionID, token, endpoint := buffer.take()

	slog.Debug("forwarding buffered voice events to Lavalink",
		"guild", guildID,
		"channel", channelID,
		"hasSessionID", sessionID != "",
	)

	c.link.OnVoiceStateUpdate(context.Background(), guildID, channelID, sessionID)
	c.link.OnVoiceServerUpdate(context.Background(), guildID, token, endpoint)
}

func (c *LavalinkAdapter) onTrackStart(player disgolink.Player, event lavalink.TrackStartEvent) {
	slog.Debug("track started", "guild", player.GuildID(), "track", event.Track.Info.Title)
}

func (c *LavalinkAdapter) onTrackEnd(player disgolink.Player, event lavalink.TrackEndEvent) {
	slog.Debug("track ended", "guild", player.GuildID(), "reason", event.Reason)

	if c.publisher == nil {
		return
	}
	c.publisher.PublishTrackEnded(domain.TrackEndedEvent{
		GuildID: player.GuildID(),
		Reason:  convertEndReason(event.Reason),
		Title:   event.Track.Info.Title,
	})
}

func (c *LavalinkAdapter) onTrackException(
	player disgolink.Player,
	event lavalink.TrackExceptionEvent,
) {
	slog.Warn("track exception", "guild", player.GuildID(), "error", event.Exception.Message)
}

func (c *LavalinkAdapter) onTrackStuck(player disgolink.Player, event lavalink.TrackStuckEvent) {
	slog.Warn("track stuck", "guild", player.GuildID(), "threshold", event.Threshold)
}

func convertEndReason(reason lavalink.TrackEndReason) domain.TrackEndReason {
	switch reason {
	case lavalink.TrackEndReasonFinished:
		return domain.TrackEndFinished
	case lavalink.TrackEndReasonLoadFailed:
		return domain.TrackEndLoadFailed
	case lavalink.TrackEndReasonStopped:
		return domain.TrackEndStopped
	case lavalink.TrackEndReasonReplaced:
		return domain.TrackEndReplaced
	case lavalink.TrackEndReasonCleanup:
		return domain.TrackEndCleanup
	default:
		return domain.TrackEndStopped
	}
}

func parseOptionalID(s string) (*snowflake.ID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := snowflake.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

var (
	_ ports.AudioPlayer     = (*LavalinkAdapter)(nil)
	_ ports.VoiceConnection = (*LavalinkAdapter)(nil)
	_ ports.TrackResolver   = (*LavalinkAdapter)(nil)
)
