package music

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/muse/internal/bot"
	"github.com/sglre6355/muse/internal/modules/music/application/events"
	"github.com/sglre6355/muse/internal/modules/music/application/usecases"
	"github.com/sglre6355/muse/internal/modules/music/infrastructure"
	"github.com/sglre6355/muse/internal/modules/music/presentation"
)

func init() {
	bot.Register(&MusicModule{})
}

var _ bot.ConfigurableModule = (*MusicModule)(nil)

// MusicModule provides music playback commands backed by Lavalink.
type MusicModule struct {
	config          *Config
	handlers        *presentation.Handlers
	eventHandlers   *presentation.EventHandlers
	lavalinkAdapter *infrastructure.LavalinkAdapter

	eventBus *events.Bus
	notifier *events.TrackEndNotifier

	// Cancelled on shutdown to stop in-flight track end handling.
	ctx    context.Context
	cancel context.CancelFunc
}

// Name returns the module name.
func (m *MusicModule) Name() string {
	return "music"
}

// Commands returns the prefix commands for this module.
func (m *MusicModule) Commands() []bot.Command {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *MusicModule) CommandHandlers() map[string]bot.CommandHandler {
	if m.handlers == nil {
		return nil
	}
	return m.handlers.CommandHandlers()
}

// EventHandlers returns the event handlers for this module.
func (m *MusicModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, event *discordgo.VoiceServerUpdate) {
			if m.eventHandlers != nil {
				m.eventHandlers.HandleVoiceServerUpdate(s, event)
			}
		},
		func(s *discordgo.Session, event *discordgo.VoiceStateUpdate) {
			if m.eventHandlers != nil {
				m.eventHandlers.HandleVoiceStateUpdate(s, event)
			}
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *MusicModule) LoadConfig() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init connects to Lavalink and wires the module's services.
func (m *MusicModule) Init(deps bot.ModuleDependencies) error {
	if deps.Session == nil {
		return errors.New("music module requires a Discord session")
	}
	if m.config == nil {
		return errors.New("music module configuration not loaded")
	}

	botID, err := snowflake.Parse(deps.Session.State.User.ID)
	if err != nil {
		return fmt.Errorf("failed to parse bot ID: %w", err)
	}

	attachments, err := infrastructure.NewAttachmentStore(m.config.AttachmentDir, deps.Session.Client)
	if err != nil {
		return err
	}

	m.ctx, m.cancel = context.WithCancel(context.Background())

	// The adapter publishes track events, so the bus comes first.
	m.eventBus = events.NewBus(events.DefaultEventBufferSize)

	m.lavalinkAdapter, err = infrastructure.NewLavalinkAdapter(
		m.ctx,
		deps.Session,
		m.eventBus,
		infrastructure.LavalinkConfig{
			NodeName: m.config.LavalinkNodeName,
			Address:  m.config.LavalinkAddress,
			Password: m.config.LavalinkPassword,
			Secure:   m.config.LavalinkSecure,
		},
	)
	if err != nil {
		return err
	}

	repo := infrastructure.NewMemoryRepository()
	voiceState := infrastructure.NewVoiceStateProvider(deps.Session)
	thumbnails := infrastructure.NewThumbnailFinder(&http.Client{Timeout: 5 * time.Second})
	notifier := infrastructure.NewNotifier(deps.Session, thumbnails)

	voiceChannel := usecases.NewVoiceChannelService(repo, m.lavalinkAdapter, voiceState, attachments)
	playback := usecases.NewPlaybackService(repo, m.lavalinkAdapter, attachments)
	queue := usecases.NewQueueService(repo, m.lavalinkAdapter, attachments)
	trackLoader := usecases.NewTrackLoaderService(
		m.lavalinkAdapter,
		attachments,
		m.config.searchSource(),
	)

	m.notifier = events.NewTrackEndNotifier(playback, voiceChannel, notifier, m.eventBus)
	m.notifier.Start(m.ctx)

	m.handlers = presentation.NewHandlers(voiceChannel, playback, queue, trackLoader, thumbnails)
	m.eventHandlers = presentation.NewEventHandlers(botID, voiceChannel, m.lavalinkAdapter)

	slog.Info("music module initialized",
		"node", m.config.LavalinkNodeName,
		"searchSource", m.config.SearchSource,
	)

	return nil
}

// Shutdown cleans up module resources.
func (m *MusicModule) Shutdown() error {
	if m.cancel != nil {
		m.cancel()
	}
	if m.notifier != nil {
		m.notifier.Stop()
	}
	if m.eventBus != nil {
		m.eventBus.Close()
	}
	if m.lavalinkAdapter != nil {
		m.lavalinkAdapter.Close()
	}

	return nil
}
