package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const colorHelp = 0x5865F2

var helpCommand = Command{
	Name:        "help",
	Aliases:     []string{"h", "commands"},
	Description: "List commands, or show details for one",
	Usage:       "help [command]",
	Category:    "General",
}

func (b *Bot) handleHelp(
	_ *discordgo.Session,
	_ *discordgo.MessageCreate,
	args string,
	r Responder,
) error {
	var embed *discordgo.MessageEmbed
	if args == "" {
		embed = b.helpOverview()
	} else {
		embed = b.helpFor(strings.ToLower(strings.Fields(args)[0]))
	}

	_, err := r.Send(&discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}})
	return err
}

func (b *Bot) helpOverview() *discordgo.MessageEmbed {
	prefix := b.config.CommandPrefix

	var categories []string
	lines := make(map[string][]string)
	for _, cmd := range b.commands.commands {
		category := cmd.Category
		if category == "" {
			category = "Other"
		}
		if _, seen := lines[category]; !seen {
			categories = append(categories, category)
		}
		lines[category] = append(lines[category],
			fmt.Sprintf("`%s%s` %s", prefix, cmd.Name, cmd.Description))
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(categories))
	for _, category := range categories {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  category,
			Value: strings.Join(lines[category], "\n"),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "Commands",
		Color:  colorHelp,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Use %shelp <command> for details", prefix),
		},
	}
}

func (b *Bot) helpFor(name string) *discordgo.MessageEmbed {
	name = strings.TrimPrefix(name, b.config.CommandPrefix)

	cmd, ok := b.commands.lookup(name)
	if !ok {
		return &discordgo.MessageEmbed{
			Title:       "Unknown Command",
			Description: fmt.Sprintf("There is no command named `%s`.", name),
			Color:       colorYellow,
		}
	}

	usage := cmd.Usage
	if usage == "" {
		usage = cmd.Name
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Usage", Value: fmt.Sprintf("`%s%s`", b.config.CommandPrefix, usage)},
	}
	if len(cmd.Aliases) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Aliases",
			Value: "`" + strings.Join(cmd.Aliases, "`, `") + "`",
		})
	}

	return &discordgo.MessageEmbed{
		Title:       cmd.Name,
		Description: cmd.Description,
		Color:       colorHelp,
		Fields:      fields,
	}
}
