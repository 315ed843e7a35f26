// Package embeds builds the chat embeds the music module posts.
package embeds

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/muse/internal/modules/music/domain"
	"github.com/sglre6355/muse/internal/textfmt"
)

// Embed colors.
const (
	ColorGold      = 0xF1C40F
	ColorDarkGreen = 0x1F8B4C
	ColorRed       = 0xE74C3C
)

// Discord rejects field values longer than this.
const maxFieldLength = 1024

// NowPlaying describes a track that just started. requesterID adds a
// "Requested by" field when non-empty.
func NowPlaying(track *domain.Track, thumbnailURL, requesterID string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "• Duration", Value: trackLength(track), Inline: true},
	}
	if requesterID != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "• Requested by",
			Value:  "<@" + requesterID + ">",
			Inline: true,
		})
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name: "• Author", Value: orUnknown(track.Author), Inline: true,
	})
	if track.URI != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "• URL", Value: fmt.Sprintf("[Click](%s)", track.URI), Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "**Now playing**",
		URL:         track.URI,
		Description: fmt.Sprintf("```\n%s\n```", track.Title),
		Color:       ColorDarkGreen,
		Fields:      fields,
	}
	if thumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: thumbnailURL}
	}

	return embed
}

// QueueEnded announces that nothing is left to play.
func QueueEnded(lastTitle string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Queue has Ended",
		Description: fmt.Sprintf(
			"Last song played: **%s**\nTo continue listening, play another song!", lastTitle),
		Color: ColorGold,
	}
}

// Queue lists the current track with its progress and what comes next.
func Queue(current *domain.Track, position time.Duration, upcoming []*domain.Track) *discordgo.MessageEmbed {
	nowPlaying := fmt.Sprintf("%s [%s/%s]",
		link(current), textfmt.Clock(position), clockLength(current))

	lines := make([]string, len(upcoming))
	for i, track := range upcoming {
		lines[i] = fmt.Sprintf("**%d)** %s", i+1, link(track))
	}

	return &discordgo.MessageEmbed{
		Color: ColorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "• Now Playing", Value: truncate(nowPlaying, maxFieldLength)},
			{Name: "• Up Next", Value: joinLines(lines, maxFieldLength)},
		},
	}
}

// Gold is a plain gold embed with an optional invoker footer.
func Gold(title, description string, invoker *discordgo.User) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorGold,
	}
	if invoker != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text:    "Invoked by " + invoker.Username,
			IconURL: invoker.AvatarURL(""),
		}
	}
	return embed
}

func trackLength(track *domain.Track) string {
	if track.IsStream {
		return "LIVE"
	}
	if formatted := textfmt.Duration(track.Duration); formatted != "" {
		return formatted
	}
	return "Unknown"
}

func clockLength(track *domain.Track) string {
	if track.IsStream {
		return "LIVE"
	}
	return textfmt.Clock(track.Duration)
}

func link(track *domain.Track) string {
	title := escapeLinkText(track.Title)
	if track.URI == "" {
		return title
	}
	return fmt.Sprintf("[%s](%s)", title, track.URI)
}

func escapeLinkText(s string) string {
	return strings.NewReplacer("[", "\\[", "]", "\\]").Replace(s)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// joinLines joins as many whole lines as fit in limit and notes how many were left out.
func joinLines(lines []string, limit int) string {
	if len(lines) == 0 {
		return "Nothing queued"
	}

	var b strings.Builder
	for i, line := range lines {
		more := fmt.Sprintf("...and %d more", len(lines)-i)
		if b.Len()+len(line)+1+len(more) > limit && i < len(lines)-1 ||
			b.Len()+len(line) > limit {
			b.WriteString(more)
			return b.String()
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// truncate shortens s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit - len("...")
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
