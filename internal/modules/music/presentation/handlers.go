package presentation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/bot"
	"github.com/sglre6355/muse/internal/modules/music/application/usecases"
	"github.com/sglre6355/muse/internal/modules/music/domain"
	"github.com/sglre6355/muse/internal/modules/music/embeds"
	"github.com/sglre6355/muse/internal/textfmt"
)

// commandTimeout bounds the Lavalink and Discord calls of one command.
const commandTimeout = 30 * time.Second

// ThumbnailFinder picks the artwork shown in "Now playing" embeds.
type ThumbnailFinder interface {
	Best(ctx context.Context, track *domain.Track) string
}

// Handlers holds all the command handlers.
type Handlers struct {
	voiceChannel *usecases.VoiceChannelService
	playback     *usecases.PlaybackService
	queue        *usecases.QueueService
	trackLoader  *usecases.TrackLoaderService
	thumbnails   ThumbnailFinder
}

// NewHandlers creates new Handlers. thumbnails may be nil, in which case
// the artwork reported by Lavalink is used as is.
func NewHandlers(
	voiceChannel *usecases.VoiceChannelService,
	playback *usecases.PlaybackService,
	queue *usecases.QueueService,
	trackLoader *usecases.TrackLoaderService,
	thumbnails ThumbnailFinder,
) *Handlers {
	return &Handlers{
		voiceChannel: voiceChannel,
		playback:     playback,
		queue:        queue,
		trackLoader:  trackLoader,
		thumbnails:   thumbnails,
	}
}

// CommandHandlers maps command names to their handlers.
func (h *Handlers) CommandHandlers() map[string]bot.CommandHandler {
	return map[string]bot.CommandHandler{
		"join":   h.HandleJoin,
		"leave":  h.HandleLeave,
		"play":   h.HandlePlay,
		"pause":  h.HandlePause,
		"resume": h.HandleResume,
		"stop":   h.HandleStop,
		"skip":   h.HandleSkip,
		"queue":  h.HandleQueue,
		"remove": h.HandleRemove,
		"loop":   h.HandleLoop,
		"volume": h.HandleVolume,
	}
}

// HandleJoin handles the join command.
func (h *Handlers) HandleJoin(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	_ string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	_, err := h.join(ctx, m, r)
	return err
}

// join connects to the author's voice channel and reports the outcome.
// It returns false when the bot did not end up connected.
func (h *Handlers) join(ctx context.Context, m *discordgo.MessageCreate, r bot.Responder) (bool, error) {
	guildID, userID, channelID, err := messageIDs(m)
	if err != nil {
		return false, err
	}

	output, err := h.voiceChannel.Join(ctx, usecases.JoinInput{
		GuildID:               guildID,
		UserID:                userID,
		NotificationChannelID: channelID,
	})
	switch {
	case errors.Is(err, usecases.ErrUserNotInVoice):
		return false, respondText(r, "Not in a voice channel")
	case err != nil:
		slog.Warn("failed to join voice channel", "guild", guildID, "error", err)
		return false, respondText(r, "Error joining the channel")
	}

	return true, respondText(r, fmt.Sprintf("Joined <#%s>", output.VoiceChannelID))
}

// HandleLeave handles the leave command.
func (h *Handlers) HandleLeave(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	_ string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	output, err := h.voiceChannel.Leave(ctx, usecases.LeaveInput{GuildID: guildID})
	switch {
	case errors.Is(err, usecases.ErrNotConnected):
		return respondText(r, "Not in a voice channel")
	case err != nil:
		return respondText(r, "Failed: "+err.Error())
	}

	return respondText(r, fmt.Sprintf("Successfully left <#%s>", output.VoiceChannelID))
}

// HandlePause handles the pause command.
func (h *Handlers) HandlePause(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	_ string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	track, err := h.playback.Pause(ctx, guildID)
	switch {
	case errors.Is(err, usecases.ErrNotConnected):
		return respondText(r, "Not in a voice channel")
	case errors.Is(err, usecases.ErrNotPlaying):
		return respondText(r, "Nothing playing currently")
	case errors.Is(err, usecases.ErrAlreadyPaused):
		return respondText(r, "Already paused")
	case err != nil:
		return err
	}

	return respondText(r, fmt.Sprintf("Paused **%s**", track.Title))
}

// HandleResume handles the resume command.
func (h *Handlers) HandleResume(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	_ string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	return h.resume(ctx, m, r)
}

func (h *Handlers) resume(ctx context.Context, m *discordgo.MessageCreate, r bot.Responder) error {
	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	track, err := h.playback.Resume(ctx, guildID)
	switch {
	case errors.Is(err, usecases.ErrNotConnected):
		return respondText(r, "No music to resume")
	case errors.Is(err, usecases.ErrNotPlaying):
		return respondText(r, "Nothing playing currently")
	case errors.Is(err, usecases.ErrNotPaused):
		return respondText(r, "Already playing")
	case err != nil:
		return err
	}

	return respondText(r, fmt.Sprintf("Resumed **%s**", track.Title))
}

// HandlePlay handles the play command. It joins the author's channel
// first when needed and plays an attached file in preference to args.
func (h *Handlers) HandlePlay(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	args string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	guildID, userID, channelID, err := messageIDs(m)
	if err != nil {
		return err
	}

	if !h.voiceChannel.IsConnected(guildID) {
		joined, err := h.join(ctx, m, r)
		if err != nil || !joined {
			return err
		}
	}

	var (
		track *domain.Track
		query = args
	)
	switch {
	case len(m.Attachments) > 0:
		attachment := m.Attachments[0]
		query = attachment.Filename
		track, err = h.trackLoader.LoadAttachment(ctx, usecases.LoadAttachmentInput{
			URL:                attachment.URL,
			Filename:           attachment.Filename,
			MessageURL:         messageLink(m),
			RequesterID:        userID,
			RequesterName:      displayName(m),
			RequesterAvatarURL: m.Author.AvatarURL(""),
		})
	case args == "":
		return h.resume(ctx, m, r)
	default:
		track, err = h.trackLoader.LoadTrack(ctx, usecases.LoadTrackInput{
			Query:              args,
			RequesterID:        userID,
			RequesterName:      displayName(m),
			RequesterAvatarURL: m.Author.AvatarURL(""),
		})
	}
	if errors.Is(err, usecases.ErrNoResults) {
		return respondText(r, fmt.Sprintf("No results found for `%s`", query))
	}
	if err != nil {
		return err
	}

	output, err := h.queue.Enqueue(ctx, usecases.EnqueueInput{
		GuildID:               guildID,
		Track:                 track,
		NotificationChannelID: channelID,
	})
	if errors.Is(err, usecases.ErrNotConnected) {
		return respondText(r, "Not in a voice channel to play in")
	}
	if err != nil {
		return err
	}

	if !output.StartedPlaying {
		return respondText(r, fmt.Sprintf("Enqueued **%s** by **%s**", track.Title, track.Author))
	}

	embed := embeds.NowPlaying(track, h.thumbnail(ctx, track), track.RequesterID.String())
	return respondEmbed(r, embed)
}

// HandleStop handles the stop command.
func (h *Handlers) HandleStop(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	_ string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	err = h.playback.Stop(ctx, guildID)
	switch {
	case errors.Is(err, usecases.ErrNotConnected):
		return respondText(r, "Not in a voice channel to play in")
	case err != nil:
		return err
	}

	return respondText(r, "Skipped song and cleared queue")
}

// HandleSkip handles the skip command.
func (h *Handlers) HandleSkip(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	_ string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	output, err := h.playback.Skip(ctx, guildID)
	switch {
	case errors.Is(err, usecases.ErrNotConnected):
		return respondText(r, "Not in a voice channel to play in")
	case errors.Is(err, usecases.ErrNotPlaying):
		return respondText(r, "Not playing any music right now")
	case err != nil:
		return err
	}

	description := fmt.Sprintf("Skipped **%s**.", output.SkippedTrack.Title)
	return respondEmbed(r, embeds.Gold("", description, m.Author))
}

// HandleQueue handles the queue command.
func (h *Handlers) HandleQueue(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	_ string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	output, err := h.queue.List(ctx, guildID)
	switch {
	case errors.Is(err, usecases.ErrNotConnected):
		return respondText(r, "Not playing any music right now")
	case errors.Is(err, usecases.ErrQueueEmpty):
		return respondText(r, "Nothing in the queue")
	case err != nil:
		return err
	}

	return respondEmbed(r, embeds.Queue(output.Current, output.Position, output.Upcoming))
}

// HandleRemove handles the remove command.
func (h *Handlers) HandleRemove(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	args string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	index, ok := parseIndex(args)
	if !ok {
		return respondText(r, "Please enter an index (e.g. `1`)")
	}

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	removed, err := h.queue.Remove(ctx, usecases.QueueRemoveInput{GuildID: guildID, Index: index})
	switch {
	case errors.Is(err, usecases.ErrNotConnected):
		return respondText(r, "Nothing playing currently")
	case errors.Is(err, usecases.ErrQueueEmpty):
		return respondText(r, "Nothing in the queue")
	case errors.Is(err, usecases.ErrIsCurrentTrack):
		return respondText(r, "Use `skip` to remove the current song")
	case errors.Is(err, usecases.ErrInvalidPosition):
		return respondText(r, fmt.Sprintf("There is no song at index %d", index))
	case err != nil:
		return err
	}

	description := fmt.Sprintf("Removed **%s** from the queue (%s in line)",
		removed.Title, textfmt.Ordinal(index))
	return respondEmbed(r, embeds.Gold("Removed Song from Queue", description, m.Author))
}

// HandleLoop handles the loop command.
func (h *Handlers) HandleLoop(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	args string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	mode, err := h.playback.SetLoopMode(ctx, usecases.SetLoopModeInput{
		GuildID: guildID,
		Mode:    firstArg(args),
	})
	switch {
	case errors.Is(err, usecases.ErrNotConnected), errors.Is(err, usecases.ErrNotPlaying):
		return respondText(r, "Nothing playing currently")
	case err != nil:
		return err
	}

	return respondEmbed(r, embeds.Gold("", fmt.Sprintf("Loop set to `%s`", mode), nil))
}

// HandleVolume handles the volume command.
func (h *Handlers) HandleVolume(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	args string,
	r bot.Responder,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	volume, ok := parseVolume(args)
	if !ok {
		return respondText(r, "Volume must be a number between `1-100`")
	}

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return err
	}

	err = h.playback.SetVolume(ctx, usecases.SetVolumeInput{GuildID: guildID, Volume: volume})
	switch {
	case errors.Is(err, usecases.ErrInvalidVolume):
		return respondText(r, "Volume must be a number between `1-100`")
	case errors.Is(err, usecases.ErrNotConnected), errors.Is(err, usecases.ErrNotPlaying):
		return respondText(r, "Nothing playing currently")
	case err != nil:
		return err
	}

	return respondEmbed(r, embeds.Gold("", fmt.Sprintf("Set the volume to `%d`", volume), nil))
}

func (h *Handlers) thumbnail(ctx context.Context, track *domain.Track) string {
	if h.thumbnails == nil {
		return track.ArtworkURL
	}
	return h.thumbnails.Best(ctx, track)
}

func respondText(r bot.Responder, content string) error {
	_, err := r.Send(&discordgo.MessageSend{Content: content})
	return err
}

func respondEmbed(r bot.Responder, embed *discordgo.MessageEmbed) error {
	_, err := r.Send(&discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}})
	return err
}

// messageIDs parses the guild, author and channel IDs of a message.
func messageIDs(m *discordgo.MessageCreate) (guildID, userID, channelID snowflake.ID, err error) {
	if guildID, err = snowflake.Parse(m.GuildID); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid guild ID: %w", err)
	}
	if userID, err = snowflake.Parse(m.Author.ID); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid user ID: %w", err)
	}
	if channelID, err = snowflake.Parse(m.ChannelID); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid channel ID: %w", err)
	}
	return guildID, userID, channelID, nil
}

// displayName returns the author's effective name in the guild.
// Priority: guild nickname > global display name > username.
func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}

func messageLink(m *discordgo.MessageCreate) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", m.GuildID, m.ChannelID, m.ID)
}
