package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// JoinInput contains the input for the Join use case.
type JoinInput struct {
	GuildID               snowflake.ID
	UserID                snowflake.ID
	NotificationChannelID snowflake.ID
}

// JoinOutput contains the result of the Join use case.
type JoinOutput struct {
	VoiceChannelID snowflake.ID
}

// LeaveInput contains the input for the Leave use case.
type LeaveInput struct {
	GuildID snowflake.ID
}

// LeaveOutput contains the result of the Leave use case.
type LeaveOutput struct {
	VoiceChannelID snowflake.ID
}

// BotVoiceStateChangeInput describes a voice state update for the bot itself.
type BotVoiceStateChangeInput struct {
	GuildID      snowflake.ID
	NewChannelID *snowflake.ID // nil when the bot was disconnected
}

// VoiceChannelService handles voice channel operations.
type VoiceChannelService struct {
	repo            domain.PlayerStateRepository
	voiceConnection ports.VoiceConnection
	voiceState      ports.VoiceStateProvider
	attachments     ports.AttachmentStore
}

// NewVoiceChannelService creates a new VoiceChannelService.
func NewVoiceChannelService(
	repo domain.PlayerStateRepository,
	voiceConnection ports.VoiceConnection,
	voiceState ports.VoiceStateProvider,
	attachments ports.AttachmentStore,
) *VoiceChannelService {
	return &VoiceChannelService{
		repo:            repo,
		voiceConnection: voiceConnection,
		voiceState:      voiceState,
		attachments:     attachments,
	}
}

// IsConnected reports whether the bot holds a voice connection in the guild.
func (v *VoiceChannelService) IsConnected(guildID snowflake.ID) bool {
	return v.repo.Get(guildID) != nil
}

// Join connects to the caller's voice channel. Joining the channel the bot
// is already in only rebinds the notification channel.
func (v *VoiceChannelService) Join(ctx context.Context, input JoinInput) (*JoinOutput, error) {
	channelID, err := v.voiceState.GetUserVoiceChannel(input.GuildID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up voice state: %w", err)
	}
	if channelID == 0 {
		return nil, ErrUserNotInVoice
	}

	if state := v.repo.Get(input.GuildID); state != nil {
		state.Lock()
		sameChannel := state.VoiceChannelID() == channelID
		if sameChannel {
			state.SetNotificationChannelID(input.NotificationChannelID)
		}
		state.Unlock()

		if sameChannel {
			return &JoinOutput{VoiceChannelID: channelID}, nil
		}
	}

	if err := v.voiceConnection.JoinChannel(ctx, input.GuildID, channelID); err != nil {
		return nil, err
	}

	state := v.repo.Get(input.GuildID)
	if state == nil {
		v.repo.Save(domain.NewPlayerState(input.GuildID, channelID, input.NotificationChannelID))
	} else {
		state.Lock()
		state.SetVoiceChannelID(channelID)
		state.SetNotificationChannelID(input.NotificationChannelID)
		state.Unlock()
	}

	slog.Info("joined voice channel", "guild", input.GuildID, "channel", channelID)

	return &JoinOutput{VoiceChannelID: channelID}, nil
}

// Leave destroys the player, disconnects from voice and drops the guild's state.
func (v *VoiceChannelService) Leave(ctx context.Context, input LeaveInput) (*LeaveOutput, error) {
	state := v.repo.Get(input.GuildID)
	if state == nil {
		return nil, ErrNotConnected
	}

	if err := v.voiceConnection.LeaveChannel(ctx, input.GuildID); err != nil {
		return nil, err
	}

	state.Lock()
	channelID := state.VoiceChannelID()
	removed := state.Queue.Clear()
	state.Unlock()

	v.repo.Delete(input.GuildID)
	releaseTracks(v.attachments, removed...)

	slog.Info("left voice channel", "guild", input.GuildID, "channel", channelID)

	return &LeaveOutput{VoiceChannelID: channelID}, nil
}

// HandleBotVoiceStateChange keeps state in sync when the bot is moved or
// disconnected by someone else.
func (v *VoiceChannelService) HandleBotVoiceStateChange(input BotVoiceStateChangeInput) {
	state := v.repo.Get(input.GuildID)
	if state == nil {
		return
	}

	if input.NewChannelID == nil {
		state.Lock()
		removed := state.Queue.Clear()
		state.Unlock()

		v.repo.Delete(input.GuildID)
		releaseTracks(v.attachments, removed...)

		slog.Info("dropped player state after disconnect", "guild", input.GuildID)
		return
	}

	state.Lock()
	state.SetVoiceChannelID(*input.NewChannelID)
	state.Unlock()
}
