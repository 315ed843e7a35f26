package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// LoadTrackInput contains the input for the LoadTrack use case.
type LoadTrackInput struct {
	Query              string
	RequesterID        snowflake.ID
	RequesterName      string
	RequesterAvatarURL string
}

// LoadAttachmentInput contains the input for the LoadAttachment use case.
type LoadAttachmentInput struct {
	URL                string
	Filename           string
	MessageURL         string // link back to the message carrying the upload
	RequesterID        snowflake.ID
	RequesterName      string
	RequesterAvatarURL string
}

// TrackLoaderService handles track loading operations.
type TrackLoaderService struct {
	trackResolver ports.TrackResolver
	attachments   ports.AttachmentStore
	searchSource  domain.SearchSource
}

// NewTrackLoaderService creates a new TrackLoaderService.
func NewTrackLoaderService(
	trackResolver ports.TrackResolver,
	attachments ports.AttachmentStore,
	searchSource domain.SearchSource,
) *TrackLoaderService {
	return &TrackLoaderService{
		trackResolver: trackResolver,
		attachments:   attachments,
		searchSource:  searchSource,
	}
}

// LoadTrack resolves a URL or search terms to the first matching track.
func (s *TrackLoaderService) LoadTrack(
	ctx context.Context,
	input LoadTrackInput,
) (*domain.Track, error) {
	query := domain.NewSearchQuery(input.Query, s.searchSource)
	if !query.IsValid() {
		return nil, ErrNoResults
	}

	info, err := s.loadFirst(ctx, query.LavalinkQuery())
	if err != nil {
		return nil, err
	}

	track := newTrack(info)
	track.RequesterID = input.RequesterID
	track.RequesterName = input.RequesterName
	track.RequesterAvatarURL = input.RequesterAvatarURL

	return track, nil
}

// LoadAttachment downloads an uploaded file and loads it from disk. The
// track is labelled with the file name and the uploader rather than
// whatever tags the file carries.
func (s *TrackLoaderService) LoadAttachment(
	ctx context.Context,
	input LoadAttachmentInput,
) (*domain.Track, error) {
	path, err := s.attachments.Save(ctx, input.URL, input.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	info, err := s.loadFirst(ctx, path)
	if err != nil {
		releaseTracks(s.attachments, &domain.Track{LocalPath: path})
		return nil, err
	}

	track := newTrack(info)
	track.Title = input.Filename
	track.Author = input.RequesterName
	track.URI = input.MessageURL
	track.LocalPath = path
	track.RequesterID = input.RequesterID
	track.RequesterName = input.RequesterName
	track.RequesterAvatarURL = input.RequesterAvatarURL

	return track, nil
}

func (s *TrackLoaderService) loadFirst(ctx context.Context, query string) (*ports.TrackInfo, error) {
	result, err := s.trackResolver.LoadTracks(ctx, query)
	if err != nil {
		return nil, err
	}

	switch {
	case result.Type == ports.LoadTypeError:
		return nil, fmt.Errorf("%w: %s", ErrLoadFailed, result.Error)
	case result.Type == ports.LoadTypeEmpty || len(result.Tracks) == 0:
		return nil, ErrNoResults
	}

	return result.Tracks[0], nil
}

func newTrack(info *ports.TrackInfo) *domain.Track {
	return &domain.Track{
		Encoded:    info.Encoded,
		Identifier: info.Identifier,
		Title:      info.Title,
		Author:     info.Author,
		Duration:   info.Duration,
		URI:        info.URI,
		ArtworkURL: info.ArtworkURL,
		SourceName: info.SourceName,
		IsStream:   info.IsStream,
		EnqueuedAt: time.Now().UTC(),
	}
}
