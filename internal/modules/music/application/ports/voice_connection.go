package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// VoiceConnection defines the interface for joining and leaving voice channels.
type VoiceConnection interface {
	// JoinChannel connects to a voice channel and waits until the connection is usable.
	JoinChannel(ctx context.Context, guildID, channelID snowflake.ID) error

	// LeaveChannel destroys the guild's player and disconnects from voice.
	LeaveChannel(ctx context.Context, guildID snowflake.ID) error
}
