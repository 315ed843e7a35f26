package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
)

// maxAttachmentSize caps a single download. Discord's own upload limit is lower.
const maxAttachmentSize = 512 << 20

var errOutsideStore = errors.New("path is outside the attachment directory")

// AttachmentStore saves uploaded audio files in a local directory that the
// Lavalink node can read.
type AttachmentStore struct {
	dir    string
	client *http.Client
}

// NewAttachmentStore creates dir if needed and returns a store writing into it.
func NewAttachmentStore(dir string, client *http.Client) (*AttachmentStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve attachment directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}

	return &AttachmentStore{dir: abs, client: client}, nil
}

// Save downloads url into the store under a unique name derived from filename.
func (s *AttachmentStore) Save(ctx context.Context, url, filename string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download attachment: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download attachment: status %d", resp.StatusCode)
	}

	path := filepath.Join(s.dir, uuid.NewString()+"-"+sanitizeFilename(filename))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}

	_, copyErr := io.Copy(file, io.LimitReader(resp.Body, maxAttachmentSize))
	closeErr := file.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}

	return path, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *AttachmentStore) Remove(path string) error {
	clean := filepath.Clean(path)
	if filepath.Dir(clean) != s.dir {
		return errOutsideStore
	}

	if err := os.Remove(clean); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove attachment file: %w", err)
	}
	return nil
}

// sanitizeFilename keeps the base name and replaces characters that are
// awkward in paths.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == ':' || r < 0x20:
			return '_'
		default:
			return r
		}
	}, name)

	if name == "." || name == ".." || name == "" {
		return "attachment"
	}
	return name
}

var _ ports.AttachmentStore = (*AttachmentStore)(nil)
