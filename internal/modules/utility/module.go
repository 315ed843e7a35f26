package utility

import (
	"github.com/sglre6355/muse/internal/bot"
	"github.com/sglre6355/muse/internal/modules/utility/presentation"
)

func init() {
	bot.Register(&UtilityModule{})
}

// UtilityModule provides general-purpose commands like ping.
type UtilityModule struct {
	pingHandler *presentation.PingHandler
}

// Name returns the module name.
func (m *UtilityModule) Name() string {
	return "utility"
}

// Commands returns the prefix commands for this module.
func (m *UtilityModule) Commands() []bot.Command {
	return []bot.Command{
		{
			Name:        "ping",
			Aliases:     []string{"latency"},
			Description: "Check the latency of the bot",
			Usage:       "ping",
			Category:    "Utility",
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *UtilityModule) CommandHandlers() map[string]bot.CommandHandler {
	return map[string]bot.CommandHandler{
		"ping": m.pingHandler.Handle,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *UtilityModule) EventHandlers() []bot.EventHandler {
	return nil
}

// Init initializes the module.
func (m *UtilityModule) Init(deps bot.ModuleDependencies) error {
	m.pingHandler = presentation.NewPingHandler()
	return nil
}

// Shutdown cleans up module resources.
func (m *UtilityModule) Shutdown() error {
	return nil
}
