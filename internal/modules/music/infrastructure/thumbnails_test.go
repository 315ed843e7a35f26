package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sglre6355/muse/internal/modules/music/domain"
	"github.com/stretchr/testify/assert"
)

func TestThumbnailFinder_YouTube(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/vi/abc/sddefault.jpg" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	finder := NewThumbnailFinder(server.Client())
	finder.youTubeBase = server.URL

	got := finder.Best(context.Background(), &domain.Track{
		Identifier: "abc",
		SourceName: "youtube",
		ArtworkURL: "https://i.ytimg.com/vi/abc/hqdefault.jpg",
	})
	assert.Equal(t, server.URL+"/vi/abc/sddefault.jpg", got)

	got = finder.Best(context.Background(), &domain.Track{
		Identifier: "missing",
		SourceName: "youtube",
		ArtworkURL: "fallback",
	})
	assert.Equal(t, "fallback", got)
}

func TestThumbnailFinder_Twitch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	finder := NewThumbnailFinder(server.Client())

	got := finder.Best(context.Background(), &domain.Track{
		SourceName: "twitch",
		ArtworkURL: server.URL + "/preview-440x248.jpg",
	})
	assert.Equal(t, server.URL+"/preview-1280x720.jpg", got)
}

func TestThumbnailFinder_OtherSources(t *testing.T) {
	finder := NewThumbnailFinder(http.DefaultClient)

	got := finder.Best(context.Background(), &domain.Track{
		SourceName: "soundcloud",
		ArtworkURL: "https://example.com/art.jpg",
	})
	assert.Equal(t, "https://example.com/art.jpg", got)

	got = finder.Best(context.Background(), &domain.Track{SourceName: "local"})
	assert.Empty(t, got)
}
