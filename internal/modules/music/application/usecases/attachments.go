package usecases

import (
	"log/slog"

	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/domain"
)

// releaseTracks deletes the downloaded files behind tracks that left the queue.
func releaseTracks(store ports.AttachmentStore, tracks ...*domain.Track) {
	if store == nil {
		return
	}
	for _, track := range tracks {
		if track == nil || !track.IsLocal() {
			continue
		}
		if err := store.Remove(track.LocalPath); err != nil {
			slog.Warn("failed to remove attachment", "path", track.LocalPath, "error", err)
		}
	}
}
