package presentation

import "github.com/sglre6355/muse/internal/bot"

const category = "Music"

// Commands returns all prefix commands of the music module.
func Commands() []bot.Command {
	return []bot.Command{
		{
			Name:        "join",
			Aliases:     []string{"connect", "j"},
			Description: "Join your voice channel",
			Usage:       "join",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "leave",
			Aliases:     []string{"disconnect", "dc"},
			Description: "Leave the voice channel and clear the queue",
			Usage:       "leave",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "play",
			Aliases:     []string{"p"},
			Description: "Play a URL, search result or attached audio file",
			Usage:       "play <url|search terms>",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "pause",
			Description: "Pause the current song",
			Usage:       "pause",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "resume",
			Aliases:     []string{"unpause"},
			Description: "Resume the paused song",
			Usage:       "resume",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "stop",
			Description: "Stop playback and clear the queue",
			Usage:       "stop",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "skip",
			Aliases:     []string{"s", "next"},
			Description: "Skip the current song",
			Usage:       "skip",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "queue",
			Aliases:     []string{"q"},
			Description: "Show the current song and what plays next",
			Usage:       "queue",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "remove",
			Aliases:     []string{"rm"},
			Description: "Remove a song from the queue",
			Usage:       "remove <index>",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "loop",
			Aliases:     []string{"repeat"},
			Description: "Loop the current song or the whole queue",
			Usage:       "loop [current|queue|disable]",
			Category:    category,
			GuildOnly:   true,
		},
		{
			Name:        "volume",
			Aliases:     []string{"vol", "v"},
			Description: "Set the playback volume",
			Usage:       "volume <1-100>",
			Category:    category,
			GuildOnly:   true,
		},
	}
}
