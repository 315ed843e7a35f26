package domain

import (
	"testing"
)

func TestNewSearchQuery(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		source        SearchSource
		expectedQuery string
		expectedIsURL bool
		expectedLoad  string
	}{
		{
			name:          "search term",
			input:         "never gonna give you up",
			source:        SourceYouTube,
			expectedQuery: "never gonna give you up",
			expectedLoad:  "ytsearch:never gonna give you up",
		},
		{
			name:          "search term with whitespace",
			input:         "  hello world  ",
			source:        SourceSoundCloud,
			expectedQuery: "hello world",
			expectedLoad:  "scsearch:hello world",
		},
		{
			name:          "https URL",
			input:         "https://youtube.com/watch?v=dQw4w9WgXcQ",
			source:        SourceYouTube,
			expectedQuery: "https://youtube.com/watch?v=dQw4w9WgXcQ",
			expectedIsURL: true,
			expectedLoad:  "https://youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:          "suppressed embed URL",
			input:         "<https://youtu.be/dQw4w9WgXcQ>",
			source:        SourceYouTube,
			expectedQuery: "https://youtu.be/dQw4w9WgXcQ",
			expectedIsURL: true,
			expectedLoad:  "https://youtu.be/dQw4w9WgXcQ",
		},
		{
			name:          "local path",
			input:         "/srv/attachments/song.mp3",
			source:        SourceDirect,
			expectedQuery: "/srv/attachments/song.mp3",
			expectedLoad:  "/srv/attachments/song.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewSearchQuery(tt.input, tt.source)

			if q.Query != tt.expectedQuery {
				t.Errorf("expected query %q, got %q", tt.expectedQuery, q.Query)
			}
			if q.IsURL != tt.expectedIsURL {
				t.Errorf("expected IsURL %v, got %v", tt.expectedIsURL, q.IsURL)
			}
			if got := q.LavalinkQuery(); got != tt.expectedLoad {
				t.Errorf("expected Lavalink query %q, got %q", tt.expectedLoad, got)
			}
		})
	}
}

func TestSearchQuery_IsValid(t *testing.T) {
	if NewSearchQuery("   ", SourceYouTube).IsValid() {
		t.Error("expected blank query to be invalid")
	}
	if !NewSearchQuery("lofi", SourceYouTube).IsValid() {
		t.Error("expected non-empty query to be valid")
	}
}

func TestParseSearchSource(t *testing.T) {
	for _, s := range []string{"ytsearch", "ytmsearch", "scsearch"} {
		if _, ok := ParseSearchSource(s); !ok {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	for _, s := range []string{"", "spsearch", "youtube"} {
		if _, ok := ParseSearchSource(s); ok {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestTrackEndReason_AdvancesQueue(t *testing.T) {
	tests := map[TrackEndReason]bool{
		TrackEndFinished:   true,
		TrackEndLoadFailed: true,
		TrackEndStopped:    false,
		TrackEndReplaced:   false,
		TrackEndCleanup:    false,
	}

	for reason, want := range tests {
		if got := reason.AdvancesQueue(); got != want {
			t.Errorf("%s: expected %v, got %v", reason, want, got)
		}
	}
}
