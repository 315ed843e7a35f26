package ports

import "context"

// AttachmentStore keeps uploaded audio files on disk while they are queued.
type AttachmentStore interface {
	// Save downloads url and returns the absolute path of the stored file.
	Save(ctx context.Context, url, filename string) (string, error)

	// Remove deletes a file previously returned by Save.
	Remove(path string) error
}
