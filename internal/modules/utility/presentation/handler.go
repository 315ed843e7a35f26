package presentation

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/muse/internal/bot"
	"github.com/sglre6355/muse/internal/modules/utility/application"
)

// PingHandler handles the ping command.
type PingHandler struct {
	interactor *application.PingInteractor
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler() *PingHandler {
	return &PingHandler{
		interactor: application.NewPingInteractor(),
	}
}

// Handle replies "Pong!" and then edits the reply to show the round trip.
func (h *PingHandler) Handle(
	s *discordgo.Session,
	m *discordgo.MessageCreate,
	args string,
	r bot.Responder,
) error {
	result := h.interactor.Start()

	reply, err := r.Send(&discordgo.MessageSend{
		Content:   result.Message,
		Reference: m.Reference(),
	})
	if err != nil {
		return fmt.Errorf("failed to send ping reply: %w", err)
	}

	if _, err := r.Edit(reply.ID, h.interactor.Finish(result)); err != nil {
		return fmt.Errorf("failed to edit ping reply: %w", err)
	}

	return nil
}
