package bot

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/bwmarrin/discordgo"
)

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config   *Config
	session  *discordgo.Session
	modules  []Module
	handlers map[string]CommandHandler
	commands *commandIndex
	throttle *Throttle
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:   cfg,
		modules:  make([]Module, 0),
		handlers: make(map[string]CommandHandler),
		commands: newCommandIndex(),
		throttle: NewThrottle(cfg.CommandRate, cfg.CommandBurst),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start loads module configuration, connects to Discord, and initializes modules.
func (b *Bot) Start() error {
	// Fail on bad configuration before touching the network
	if err := b.loadModuleConfigs(); err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent
	b.session = session

	// Modules need State.User, which is only populated once connected
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.initModules(); err != nil {
		_ = b.session.Close()
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	b.buildHandlerMap()

	b.session.AddHandler(b.handleMessage)

	b.registerEventHandlers()

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
		"prefix", b.config.CommandPrefix,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// loadModuleConfigs calls LoadConfig on every module that has configuration.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		cm, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := cm.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
		}
	}
	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Session: b.session,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// buildHandlerMap builds the command name to handler mapping and the alias index.
func (b *Bot) buildHandlerMap() {
	b.handlers[helpCommand.Name] = b.handleHelp
	b.commands.add(helpCommand)

	for _, mod := range b.modules {
		maps.Copy(b.handlers, mod.CommandHandlers())

		for _, cmd := range mod.Commands() {
			if _, ok := b.handlers[cmd.Name]; !ok {
				slog.Warn("found no handler for command", "module", mod.Name(), "command", cmd.Name)
				continue
			}
			if conflict, ok := b.commands.add(cmd); !ok {
				slog.Warn("skipped command with conflicting name",
					"module", mod.Name(),
					"command", cmd.Name,
					"conflict", conflict,
				)
				continue
			}
			slog.Debug("registered command", "command", cmd.Name, "aliases", cmd.Aliases)
		}
	}
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}

// Embed colors for responses.
const (
	colorYellow = 0xFFFF00
	colorRed    = 0xFF0000
)

// handleMessage routes prefixed messages to the matching command handler.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	name, args, ok := ParseCommand(m.Content, b.config.CommandPrefix)
	if !ok {
		return
	}

	cmd, ok := b.commands.lookup(name)
	if !ok {
		slog.Debug("ignored unknown command", "command", name, "user_id", m.Author.ID)
		return
	}

	b.dispatch(s, m, cmd, args, NewDiscordResponder(s, m.ChannelID))
}

// dispatch applies the per-command guards and runs the handler.
func (b *Bot) dispatch(
	s *discordgo.Session,
	m *discordgo.MessageCreate,
	cmd Command,
	args string,
	r Responder,
) {
	if cmd.GuildOnly && m.GuildID == "" {
		b.respondWithEmbed(r, "Server Only", "This command can only be used in a server.", colorYellow)
		return
	}

	if !b.throttle.Allow(m.Author.ID) {
		slog.Debug("throttled command", "command", cmd.Name, "user_id", m.Author.ID)
		b.respondWithEmbed(r, "Slow Down", "You're sending commands too fast.", colorYellow)
		return
	}

	handler, ok := b.handlers[cmd.Name]
	if !ok {
		slog.Warn("found no handler for command", "command", cmd.Name)
		return
	}

	if err := handler(s, m, args, r); err != nil {
		slog.Error("failed to handle command",
			"command", cmd.Name,
			"guild_id", m.GuildID,
			"user_id", m.Author.ID,
			"error", err,
		)
		b.respondWithEmbed(r, "Error", "An error occurred while processing your command.",
			colorRed)
	}
}

// respondWithEmbed sends a single-embed response.
func (b *Bot) respondWithEmbed(r Responder, title, description string, color int) {
	_, err := r.Send(&discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: description,
				Color:       color,
			},
		},
	})
	if err != nil {
		slog.Error("failed to send embed response", "error", err)
	}
}
