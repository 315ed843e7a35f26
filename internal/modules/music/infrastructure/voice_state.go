package infrastructure

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
)

// VoiceStateProvider reads voice states from the session's state cache.
type VoiceStateProvider struct {
	state *discordgo.State
}

// NewVoiceStateProvider creates a new VoiceStateProvider.
func NewVoiceStateProvider(session *discordgo.Session) *VoiceStateProvider {
	return &VoiceStateProvider{state: session.State}
}

// GetUserVoiceChannel returns the voice channel the user is in, or 0.
func (v *VoiceStateProvider) GetUserVoiceChannel(guildID, userID snowflake.ID) (snowflake.ID, error) {
	vs, err := v.state.VoiceState(guildID.String(), userID.String())
	if err != nil {
		if errors.Is(err, discordgo.ErrStateNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if vs.ChannelID == "" {
		return 0, nil
	}

	return snowflake.Parse(vs.ChannelID)
}

var _ ports.VoiceStateProvider = (*VoiceStateProvider)(nil)
