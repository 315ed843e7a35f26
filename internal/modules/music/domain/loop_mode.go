package domain

import "strings"

// LoopMode represents the loop mode for queue playback.
type LoopMode int

const (
	LoopModeNone  LoopMode = iota // Default: no looping
	LoopModeTrack                 // Repeat current track indefinitely
	LoopModeQueue                 // Repeat entire queue when reaching end
)

// String returns the name users type for the loop mode.
func (m LoopMode) String() string {
	switch m {
	case LoopModeTrack:
		return "current"
	case LoopModeQueue:
		return "queue"
	default:
		return "disable"
	}
}

// ParseLoopMode converts user input to a LoopMode.
// ok is false for anything that is not a known mode name.
func ParseLoopMode(s string) (mode LoopMode, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "current", "track", "song":
		return LoopModeTrack, true
	case "queue", "all":
		return LoopModeQueue, true
	case "disable", "off", "none":
		return LoopModeNone, true
	default:
		return LoopModeNone, false
	}
}

// Toggle switches between repeating the current track and not looping.
// A queue loop toggles off.
func (m LoopMode) Toggle() LoopMode {
	if m == LoopModeNone {
		return LoopModeTrack
	}
	return LoopModeNone
}
