package domain

import (
	"testing"
)

func newTestQueue(titles ...string) (Queue, []*Track) {
	q := NewQueue()
	tracks := make([]*Track, len(titles))
	for i, title := range titles {
		tracks[i] = &Track{Encoded: "enc-" + title, Title: title}
	}
	q.Append(tracks...)
	return q, tracks
}

func titles(tracks []*Track) []string {
	result := make([]string, len(tracks))
	for i, t := range tracks {
		result[i] = t.Title
	}
	return result
}

func assertTitles(t *testing.T, got []*Track, want ...string) {
	t.Helper()
	gotTitles := titles(got)
	if len(gotTitles) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotTitles)
	}
	for i := range want {
		if gotTitles[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotTitles)
		}
	}
}

func TestNewQueue(t *testing.T) {
	q := NewQueue()

	if !q.IsEmpty() {
		t.Errorf("expected empty queue, got length %d", q.Len())
	}
	if q.Current() != nil {
		t.Error("expected no current track")
	}
	if len(q.Upcoming()) != 0 {
		t.Error("expected no upcoming tracks")
	}
}

func TestQueue_AppendAndCurrent(t *testing.T) {
	q, tracks := newTestQueue("a", "b", "c")

	if q.Len() != 3 {
		t.Fatalf("expected length 3, got %d", q.Len())
	}
	if q.Current() != tracks[0] {
		t.Errorf("expected first appended track to be current, got %v", q.Current())
	}
	assertTitles(t, q.Upcoming(), "b", "c")
}

func TestQueue_UpcomingReturnsCopy(t *testing.T) {
	q, _ := newTestQueue("a", "b", "c")

	upcoming := q.Upcoming()
	upcoming[0] = &Track{Title: "mutated"}

	assertTitles(t, q.List(), "a", "b", "c")
}

func TestQueue_GetAt(t *testing.T) {
	q, tracks := newTestQueue("a", "b")

	if q.GetAt(1) != tracks[1] {
		t.Error("expected GetAt(1) to return second track")
	}
	for _, index := range []int{-1, 2, 100} {
		if q.GetAt(index) != nil {
			t.Errorf("expected nil for index %d", index)
		}
	}
}

func TestQueue_RemoveAt(t *testing.T) {
	tests := []struct {
		name        string
		index       int
		wantRemoved string
		wantRest    []string
	}{
		{"middle shifts later tracks", 1, "b", []string{"a", "c", "d"}},
		{"last", 3, "d", []string{"a", "b", "c"}},
		{"current", 0, "a", []string{"b", "c", "d"}},
		{"out of range", 4, "", []string{"a", "b", "c", "d"}},
		{"negative", -1, "", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := newTestQueue("a", "b", "c", "d")

			removed := q.RemoveAt(tt.index)

			if tt.wantRemoved == "" {
				if removed != nil {
					t.Fatalf("expected nil, got %q", removed.Title)
				}
			} else if removed == nil || removed.Title != tt.wantRemoved {
				t.Fatalf("expected %q removed, got %v", tt.wantRemoved, removed)
			}
			assertTitles(t, q.List(), tt.wantRest...)
		})
	}
}

func TestQueue_Advance_None(t *testing.T) {
	q, tracks := newTestQueue("a", "b")

	next, dropped := q.Advance(LoopModeNone)
	if next != tracks[1] {
		t.Errorf("expected b to be next, got %v", next)
	}
	if dropped != tracks[0] {
		t.Errorf("expected a to be dropped, got %v", dropped)
	}

	next, dropped = q.Advance(LoopModeNone)
	if next != nil {
		t.Errorf("expected queue to end, got %v", next)
	}
	if dropped != tracks[1] {
		t.Errorf("expected b to be dropped, got %v", dropped)
	}
	if !q.IsEmpty() {
		t.Error("expected empty queue")
	}
}

func TestQueue_Advance_Track(t *testing.T) {
	q, tracks := newTestQueue("a", "b")

	next, dropped := q.Advance(LoopModeTrack)
	if next != tracks[0] {
		t.Errorf("expected a to repeat, got %v", next)
	}
	if dropped != nil {
		t.Errorf("expected nothing dropped, got %v", dropped)
	}
	assertTitles(t, q.List(), "a", "b")
}

func TestQueue_Advance_Queue(t *testing.T) {
	q, _ := newTestQueue("a", "b", "c")

	next, dropped := q.Advance(LoopModeQueue)
	if next == nil || next.Title != "b" {
		t.Errorf("expected b to be next, got %v", next)
	}
	if dropped != nil {
		t.Errorf("expected nothing dropped, got %v", dropped)
	}
	assertTitles(t, q.List(), "b", "c", "a")

	q.Advance(LoopModeQueue)
	q.Advance(LoopModeQueue)
	assertTitles(t, q.List(), "a", "b", "c")
}

func TestQueue_Advance_Empty(t *testing.T) {
	q := NewQueue()

	for _, mode := range []LoopMode{LoopModeNone, LoopModeTrack, LoopModeQueue} {
		next, dropped := q.Advance(mode)
		if next != nil || dropped != nil {
			t.Errorf("expected nil results for %v on empty queue", mode)
		}
	}
}

func TestQueue_Clear(t *testing.T) {
	q, _ := newTestQueue("a", "b")

	removed := q.Clear()

	assertTitles(t, removed, "a", "b")
	if !q.IsEmpty() {
		t.Errorf("expected empty queue, got length %d", q.Len())
	}
}
