package ports

import (
	"context"
)

// TrackResolver defines the interface for loading/searching tracks.
type TrackResolver interface {
	// LoadTracks resolves a URL, search query or local path.
	LoadTracks(ctx context.Context, query string) (*LoadResult, error)
}
