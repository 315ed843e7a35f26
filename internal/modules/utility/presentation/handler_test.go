package presentation

import (
	"errors"
	"regexp"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/muse/internal/bot"
)

func newPingMessage() *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "message-1",
			ChannelID: "channel-1",
			GuildID:   "guild-1",
			Content:   "!ping",
			Author:    &discordgo.User{ID: "user-1"},
		},
	}
}

func TestPingHandler_RepliesThenEdits(t *testing.T) {
	handler := NewPingHandler()
	responder := &bot.MockResponder{}

	if err := handler.Handle(nil, newPingMessage(), "", responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := responder.LastSent()
	if sent == nil {
		t.Fatal("expected reply, got nil")
	}
	if sent.Content != "Pong!" {
		t.Errorf("expected content %q, got %q", "Pong!", sent.Content)
	}
	if sent.Reference == nil || sent.Reference.MessageID != "message-1" {
		t.Errorf("expected reply to reference the invoking message, got %+v", sent.Reference)
	}

	if len(responder.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(responder.Edits))
	}
	if !regexp.MustCompile("^Pong! `\\d+` ms$").MatchString(responder.Edits[0]) {
		t.Errorf("unexpected edited content %q", responder.Edits[0])
	}
}

func TestPingHandler_ResponderError(t *testing.T) {
	handler := NewPingHandler()
	expectedErr := errors.New("responder failed")
	responder := &bot.MockResponder{Err: expectedErr}

	err := handler.Handle(nil, newPingMessage(), "", responder)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if len(responder.Edits) != 0 {
		t.Error("expected no edit after failed send")
	}
}
