package domain

import (
	"fmt"
	"time"
)

// PingResult represents an in-flight latency measurement.
type PingResult struct {
	Message string
	SentAt  time.Time
}

// NewPingResult starts a measurement at sentAt.
func NewPingResult(sentAt time.Time) *PingResult {
	return &PingResult{
		Message: "Pong!",
		SentAt:  sentAt,
	}
}

// Latency returns the whole milliseconds elapsed between SentAt and repliedAt.
func (p *PingResult) Latency(repliedAt time.Time) int64 {
	elapsed := repliedAt.Sub(p.SentAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed.Milliseconds()
}

// Report renders the measured latency, e.g. "Pong! `42` ms".
func (p *PingResult) Report(repliedAt time.Time) string {
	return fmt.Sprintf("%s `%d` ms", p.Message, p.Latency(repliedAt))
}
