package domain

import (
	"strings"
)

// SearchSource is a Lavalink search prefix.
type SearchSource string

const (
	// SourceYouTube searches YouTube.
	SourceYouTube SearchSource = "ytsearch"
	// SourceYouTubeMusic searches YouTube Music.
	SourceYouTubeMusic SearchSource = "ytmsearch"
	// SourceSoundCloud searches SoundCloud.
	SourceSoundCloud SearchSource = "scsearch"
	// SourceDirect indicates a direct URL or path (no search prefix).
	SourceDirect SearchSource = ""
)

// ParseSearchSource validates a configured search prefix.
func ParseSearchSource(s string) (SearchSource, bool) {
	switch source := SearchSource(s); source {
	case SourceYouTube, SourceYouTubeMusic, SourceSoundCloud:
		return source, true
	default:
		return "", false
	}
}

// SearchQuery represents a query for searching tracks.
type SearchQuery struct {
	Query  string       // The search term or URL
	Source SearchSource // The search source
	IsURL  bool         // Whether the query is a direct URL
}

// NewSearchQuery creates a SearchQuery from user input. URLs are loaded
// directly; anything else is searched on source.
func NewSearchQuery(input string, source SearchSource) *SearchQuery {
	input = strings.TrimSpace(input)

	if isURL(input) {
		return &SearchQuery{
			Query:  strings.Trim(input, "<>"),
			Source: SourceDirect,
			IsURL:  true,
		}
	}

	return &SearchQuery{
		Query:  input,
		Source: source,
		IsURL:  false,
	}
}

// LavalinkQuery returns the query string formatted for Lavalink.
func (q *SearchQuery) LavalinkQuery() string {
	if q.IsURL || q.Source == SourceDirect {
		return q.Query
	}
	return string(q.Source) + ":" + q.Query
}

// IsValid returns true if the query is not empty.
func (q *SearchQuery) IsValid() bool {
	return q.Query != ""
}

// isURL checks if the input looks like a URL. Discord users often wrap
// links in angle brackets to suppress embeds.
func isURL(input string) bool {
	input = strings.TrimPrefix(input, "<")
	return strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://") ||
		strings.HasPrefix(input, "www.")
}
