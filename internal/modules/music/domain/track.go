package domain

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Track represents a playable audio track.
type Track struct {
	Encoded            string // Lavalink encoded track data
	Identifier         string
	Title              string
	Author             string // channel, uploader or, for uploads, the message author
	Duration           time.Duration
	URI                string
	ArtworkURL         string
	SourceName         string // e.g., "youtube", "soundcloud", "local"
	IsStream           bool
	LocalPath          string       // non-empty for tracks backed by a downloaded attachment
	RequesterID        snowflake.ID // Discord user who added the track
	RequesterName      string
	RequesterAvatarURL string
	EnqueuedAt         time.Time
}

// IsValid returns true if the track has the minimum required fields.
func (t *Track) IsValid() bool {
	return t.Encoded != "" && t.Title != ""
}

// IsLocal reports whether the track plays from a file this bot downloaded.
func (t *Track) IsLocal() bool {
	return t.LocalPath != ""
}
