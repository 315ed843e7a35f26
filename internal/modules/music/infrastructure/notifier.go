package infrastructure

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/modules/music/application/ports"
	"github.com/sglre6355/muse/internal/modules/music/domain"
	"github.com/sglre6355/muse/internal/modules/music/embeds"
)

// Notifier posts playback updates to a guild's notification channel.
type Notifier struct {
	session    *discordgo.Session
	thumbnails *ThumbnailFinder
}

// NewNotifier creates a new Notifier.
func NewNotifier(session *discordgo.Session, thumbnails *ThumbnailFinder) *Notifier {
	return &Notifier{
		session:    session,
		thumbnails: thumbnails,
	}
}

// SendNowPlaying sends a "Now playing" embed for a track that followed another.
func (n *Notifier) SendNowPlaying(channelID snowflake.ID, track *domain.Track) error {
	thumbnail := n.thumbnails.Best(context.Background(), track)
	embed := embeds.NowPlaying(track, thumbnail, "")

	_, err := n.session.ChannelMessageSendEmbed(channelID.String(), embed)
	return err
}

// SendQueueEnded sends the "Queue has Ended" embed.
func (n *Notifier) SendQueueEnded(channelID snowflake.ID, lastTitle string) error {
	_, err := n.session.ChannelMessageSendEmbed(channelID.String(), embeds.QueueEnded(lastTitle))
	return err
}

var _ ports.NotificationSender = (*Notifier)(nil)
