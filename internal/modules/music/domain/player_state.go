package domain

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// DefaultVolume is the player volume before anyone changes it.
const DefaultVolume = 100

// PlayerState represents the state of a music player for a guild.
// Callers must hold the lock while reading or mutating it.
type PlayerState struct {
	mu sync.Mutex

	guildID               snowflake.ID
	voiceChannelID        snowflake.ID // Voice channel the bot is connected to
	notificationChannelID snowflake.ID // Text channel for notifications
	Queue                 Queue
	paused                bool
	loopMode              LoopMode
	volume                int
}

// NewPlayerState creates a new PlayerState for the given guild and channels.
func NewPlayerState(guildID, voiceChannelID, notificationChannelID snowflake.ID) *PlayerState {
	return &PlayerState{
		guildID:               guildID,
		voiceChannelID:        voiceChannelID,
		notificationChannelID: notificationChannelID,
		Queue:                 NewQueue(),
		loopMode:              LoopModeNone,
		volume:                DefaultVolume,
	}
}

// Lock locks the state.
func (p *PlayerState) Lock() { p.mu.Lock() }

// Unlock unlocks the state.
func (p *PlayerState) Unlock() { p.mu.Unlock() }

// GuildID returns the guild ID.
func (p *PlayerState) GuildID() snowflake.ID {
	// guildID is immutable after construction
	return p.guildID
}

// VoiceChannelID returns the voice channel ID.
func (p *PlayerState) VoiceChannelID() snowflake.ID {
	return p.voiceChannelID
}

// SetVoiceChannelID updates the voice channel ID.
func (p *PlayerState) SetVoiceChannelID(channelID snowflake.ID) {
	p.voiceChannelID = channelID
}

// NotificationChannelID returns the text channel used for notifications.
func (p *PlayerState) NotificationChannelID() snowflake.ID {
	return p.notificationChannelID
}

// SetNotificationChannelID updates the notification channel ID.
func (p *PlayerState) SetNotificationChannelID(channelID snowflake.ID) {
	p.notificationChannelID = channelID
}

// CurrentTrack returns the track loaded in the player, or nil.
func (p *PlayerState) CurrentTrack() *Track {
	return p.Queue.Current()
}

// IsPaused returns true if playback is paused.
func (p *PlayerState) IsPaused() bool {
	return p.paused
}

// SetPaused sets the paused flag.
func (p *PlayerState) SetPaused(paused bool) {
	p.paused = paused
}

// LoopMode returns the current loop mode.
func (p *PlayerState) LoopMode() LoopMode {
	return p.loopMode
}

// SetLoopMode sets the loop mode.
func (p *PlayerState) SetLoopMode(mode LoopMode) {
	p.loopMode = mode
}

// Volume returns the player volume, 1 to 100.
func (p *PlayerState) Volume() int {
	return p.volume
}

// SetVolume sets the player volume.
func (p *PlayerState) SetVolume(volume int) {
	p.volume = volume
}
