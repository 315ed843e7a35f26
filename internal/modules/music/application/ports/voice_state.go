package ports

import "github.com/disgoorg/snowflake/v2"

// VoiceStateProvider defines the interface for looking up users' voice channels.
type VoiceStateProvider interface {
	// GetUserVoiceChannel returns the user's voice channel, or 0 if they are not in one.
	GetUserVoiceChannel(guildID, userID snowflake.ID) (snowflake.ID, error)
}
