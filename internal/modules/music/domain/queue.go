package domain

// Queue holds a guild's tracks in play order. The track at index 0 is the
// one currently loaded in the player.
type Queue struct {
	tracks []*Track
}

// NewQueue creates a new empty Queue.
func NewQueue() Queue {
	return Queue{tracks: make([]*Track, 0)}
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the total number of tracks, including the current one.
func (q *Queue) Len() int {
	return len(q.tracks)
}

func (q *Queue) isValidIndex(index int) bool {
	return 0 <= index && index < q.Len()
}

// Current returns the current track, or nil if the queue is empty.
func (q *Queue) Current() *Track {
	if q.IsEmpty() {
		return nil
	}
	return q.tracks[0]
}

// Upcoming returns the tracks after the current one.
func (q *Queue) Upcoming() []*Track {
	if q.Len() < 2 {
		return []*Track{}
	}
	result := make([]*Track, q.Len()-1)
	copy(result, q.tracks[1:])
	return result
}

// List returns a copy of all tracks in the queue.
func (q *Queue) List() []*Track {
	result := make([]*Track, q.Len())
	copy(result, q.tracks)
	return result
}

// Append adds tracks to the end of the queue.
func (q *Queue) Append(tracks ...*Track) {
	q.tracks = append(q.tracks, tracks...)
}

// GetAt returns the track at the given index without removing it.
// Returns nil if the index is out of bounds.
func (q *Queue) GetAt(index int) *Track {
	if !q.isValidIndex(index) {
		return nil
	}
	return q.tracks[index]
}

// RemoveAt removes and returns the track at the given index, shifting later
// tracks forward. Returns nil if the index is out of bounds.
func (q *Queue) RemoveAt(index int) *Track {
	if !q.isValidIndex(index) {
		return nil
	}

	track := q.tracks[index]
	q.tracks = append(q.tracks[:index], q.tracks[index+1:]...)
	return track
}

// Advance moves past the current track according to mode and returns the new
// current track, or nil if the queue ran out. dropped is the track that left
// the queue, if any.
//   - LoopModeNone: drop the current track
//   - LoopModeTrack: keep the current track
//   - LoopModeQueue: move the current track to the end
func (q *Queue) Advance(mode LoopMode) (next, dropped *Track) {
	if q.IsEmpty() {
		return nil, nil
	}

	switch mode {
	case LoopModeTrack:
		// Keep the current track

	case LoopModeQueue:
		head := q.tracks[0]
		q.tracks = append(q.tracks[1:], head)

	default: // LoopModeNone
		dropped = q.tracks[0]
		q.tracks = q.tracks[1:]
	}

	return q.Current(), dropped
}

// Clear removes all tracks and returns them.
func (q *Queue) Clear() []*Track {
	removed := q.tracks
	q.tracks = make([]*Track, 0)
	return removed
}
