package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Responder provides an abstraction for replying in the channel a command was invoked from.
// This interface enables testing handlers without a live Discord connection.
type Responder interface {
	// Send posts a new message to the channel.
	Send(msg *discordgo.MessageSend) (*discordgo.Message, error)

	// Edit replaces the content of a previously sent message.
	Edit(messageID, content string) (*discordgo.Message, error)
}

// DiscordResponder implements Responder using a live Discord session.
type DiscordResponder struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscordResponder creates a new DiscordResponder.
func NewDiscordResponder(s *discordgo.Session, channelID string) *DiscordResponder {
	return &DiscordResponder{
		session:   s,
		channelID: channelID,
	}
}

// Send posts the message via Discord API.
func (r *DiscordResponder) Send(msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return r.session.ChannelMessageSendComplex(r.channelID, msg)
}

// Edit edits the message content via Discord API.
func (r *DiscordResponder) Edit(messageID, content string) (*discordgo.Message, error) {
	return r.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      messageID,
		Channel: r.channelID,
		Content: &content,
	})
}

// MockResponder is a test double for Responder.
type MockResponder struct {
	Sent  []*discordgo.MessageSend
	Edits []string
	Err   error
}

// Send records the message for testing.
func (m *MockResponder) Send(msg *discordgo.MessageSend) (*discordgo.Message, error) {
	m.Sent = append(m.Sent, msg)
	if m.Err != nil {
		return nil, m.Err
	}
	return &discordgo.Message{
		ID:      fmt.Sprintf("mock-%d", len(m.Sent)),
		Content: msg.Content,
		Embeds:  msg.Embeds,
	}, nil
}

// Edit records the edited content for testing.
func (m *MockResponder) Edit(messageID, content string) (*discordgo.Message, error) {
	m.Edits = append(m.Edits, content)
	if m.Err != nil {
		return nil, m.Err
	}
	return &discordgo.Message{ID: messageID, Content: content}, nil
}

// LastSent returns the most recent message sent, or nil.
func (m *MockResponder) LastSent() *discordgo.MessageSend {
	if len(m.Sent) == 0 {
		return nil
	}
	return m.Sent[len(m.Sent)-1]
}

// LastContent returns the content of the most recent message sent.
func (m *MockResponder) LastContent() string {
	if last := m.LastSent(); last != nil {
		return last.Content
	}
	return ""
}

// LastEmbed returns the first embed of the most recent message sent, or nil.
func (m *MockResponder) LastEmbed() *discordgo.MessageEmbed {
	last := m.LastSent()
	if last == nil || len(last.Embeds) == 0 {
		return nil
	}
	return last.Embeds[0]
}
