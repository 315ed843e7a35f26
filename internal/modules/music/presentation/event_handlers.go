package presentation

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/usecases"
)

// VoiceEventForwarder receives the raw voice events Lavalink needs.
type VoiceEventForwarder interface {
	OnVoiceStateUpdate(event *discordgo.VoiceStateUpdate)
	OnVoiceServerUpdate(event *discordgo.VoiceServerUpdate)
}

// EventHandlers handles Discord gateway events for the music module.
type EventHandlers struct {
	botID        snowflake.ID
	voiceChannel *usecases.VoiceChannelService
	forwarder    VoiceEventForwarder
}

// NewEventHandlers creates a new EventHandlers.
func NewEventHandlers(
	botID snowflake.ID,
	voiceChannel *usecases.VoiceChannelService,
	forwarder VoiceEventForwarder,
) *EventHandlers {
	return &EventHandlers{
		botID:        botID,
		voiceChannel: voiceChannel,
		forwarder:    forwarder,
	}
}

// HandleVoiceServerUpdate forwards voice server updates to Lavalink.
func (h *EventHandlers) HandleVoiceServerUpdate(
	_ *discordgo.Session,
	event *discordgo.VoiceServerUpdate,
) {
	h.forwarder.OnVoiceServerUpdate(event)
}

// HandleVoiceStateUpdate forwards the bot's voice state to Lavalink and
// drops the guild's player when the bot was disconnected.
func (h *EventHandlers) HandleVoiceStateUpdate(
	_ *discordgo.Session,
	event *discordgo.VoiceStateUpdate,
) {
	if event.UserID != h.botID.String() {
		return
	}

	h.forwarder.OnVoiceStateUpdate(event)

	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil {
		slog.Error("failed to parse guild ID in voice state update", "error", err)
		return
	}

	// nil means disconnected
	var newChannelID *snowflake.ID
	if event.ChannelID != "" {
		id, err := snowflake.Parse(event.ChannelID)
		if err != nil {
			slog.Error("failed to parse channel ID in voice state update", "error", err)
			return
		}
		newChannelID = &id
	}

	h.voiceChannel.HandleBotVoiceStateChange(usecases.BotVoiceStateChangeInput{
		GuildID:      guildID,
		NewChannelID: newChannelID,
	})
}
