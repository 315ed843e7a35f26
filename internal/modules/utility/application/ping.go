package application

import (
	"time"

	"github.com/sglre6355/muse/internal/modules/utility/domain"
)

// PingInteractor handles the ping use case.
type PingInteractor struct {
	now func() time.Time
}

// NewPingInteractor creates a new PingInteractor.
func NewPingInteractor() *PingInteractor {
	return &PingInteractor{now: time.Now}
}

// Start begins a latency measurement.
func (p *PingInteractor) Start() *domain.PingResult {
	return domain.NewPingResult(p.now())
}

// Finish completes the measurement and returns the text to show.
func (p *PingInteractor) Finish(result *domain.PingResult) string {
	return result.Report(p.now())
}
