package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sglre6355/muse/internal/modules/music/domain"
)

const thumbnailProbeTimeout = 5 * time.Second

var youTubeThumbnailQualities = []string{"maxresdefault", "sddefault", "hqdefault", "mqdefault"}

// ThumbnailFinder upgrades track artwork to the largest image the source serves.
type ThumbnailFinder struct {
	client *http.Client
	// youTubeBase is the image host, replaced in tests.
	youTubeBase string
}

// NewThumbnailFinder creates a ThumbnailFinder that probes with client.
func NewThumbnailFinder(client *http.Client) *ThumbnailFinder {
	return &ThumbnailFinder{
		client:      client,
		youTubeBase: "https://img.youtube.com",
	}
}

// Best returns the best thumbnail URL for track, falling back to its artwork.
func (f *ThumbnailFinder) Best(ctx context.Context, track *domain.Track) string {
	switch strings.ToLower(track.SourceName) {
	case "youtube":
		return f.youTube(ctx, track.Identifier, track.ArtworkURL)
	case "twitch":
		return f.twitch(ctx, track.ArtworkURL)
	default:
		return track.ArtworkURL
	}
}

func (f *ThumbnailFinder) youTube(ctx context.Context, videoID, fallbackURL string) string {
	if videoID == "" {
		return fallbackURL
	}

	ctx, cancel := context.WithTimeout(ctx, thumbnailProbeTimeout)
	defer cancel()

	for _, quality := range youTubeThumbnailQualities {
		url := fmt.Sprintf("%s/vi/%s/%s.jpg", f.youTubeBase, videoID, quality)
		if f.exists(ctx, url) {
			return url
		}
	}

	return fallbackURL
}

// twitch asks for 1280x720 instead of the 440x248 preview Lavalink reports.
func (f *ThumbnailFinder) twitch(ctx context.Context, artworkURL string) string {
	highRes := strings.Replace(artworkURL, "440x248", "1280x720", 1)
	if highRes == artworkURL {
		return artworkURL
	}

	ctx, cancel := context.WithTimeout(ctx, thumbnailProbeTimeout)
	defer cancel()

	if f.exists(ctx, highRes) {
		return highRes
	}
	return artworkURL
}

func (f *ThumbnailFinder) exists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}
