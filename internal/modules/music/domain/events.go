package domain

import "github.com/disgoorg/snowflake/v2"

// TrackEndReason indicates why a track ended.
type TrackEndReason string

const (
	TrackEndFinished   TrackEndReason = "finished"
	TrackEndLoadFailed TrackEndReason = "load_failed"
	TrackEndStopped    TrackEndReason = "stopped"
	TrackEndReplaced   TrackEndReason = "replaced"
	TrackEndCleanup    TrackEndReason = "cleanup"
)

// AdvancesQueue reports whether the queue should move past the ended track.
// Stopped and replaced tracks were already handled by the command that
// caused them.
func (r TrackEndReason) AdvancesQueue() bool {
	return r == TrackEndFinished || r == TrackEndLoadFailed
}

// TrackEndedEvent is emitted by the audio node when a track stops playing.
type TrackEndedEvent struct {
	GuildID snowflake.ID
	Reason  TrackEndReason
	Title   string // title reported by the node for the ended track
}
