package ports

import (
	"time"
)

// LoadResult represents the result of loading tracks.
type LoadResult struct {
	Type         LoadType
	Tracks       []*TrackInfo
	PlaylistName string
	Error        string // set for LoadTypeError
}

// LoadType represents the type of load result.
type LoadType string

const (
	LoadTypeTrack    LoadType = "track"
	LoadTypePlaylist LoadType = "playlist"
	LoadTypeSearch   LoadType = "search"
	LoadTypeEmpty    LoadType = "empty"
	LoadTypeError    LoadType = "error"
)

// TrackInfo contains information about a loaded track.
type TrackInfo struct {
	Identifier string // Unique identifier from Lavalink
	Encoded    string
	Title      string
	Author     string
	Duration   time.Duration
	URI        string
	ArtworkURL string
	SourceName string // e.g., "youtube", "soundcloud", "local"
	IsStream   bool
}
