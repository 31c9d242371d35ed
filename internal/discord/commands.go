package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/metrics"
)

// CommandHandler processes a slash command interaction. Handlers close over
// the services they need, so the registry stays transport-only.
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

// ComponentHandler processes a message component interaction (buttons etc.).
type ComponentHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

// CommandRegistry maps command names and component custom IDs to handlers.
type CommandRegistry struct {
	commands          []*discordgo.ApplicationCommand
	handlers          map[string]CommandHandler
	componentHandlers map[string]ComponentHandler
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		handlers:          make(map[string]CommandHandler),
		componentHandlers: make(map[string]ComponentHandler),
	}
}

// Register adds a command definition and its handler to the registry.
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.commands = append(r.commands, cmd)
	r.handlers[cmd.Name] = handler
}

// RegisterComponent adds a handler for a component custom ID.
func (r *CommandRegistry) RegisterComponent(customID string, handler ComponentHandler) {
	r.componentHandlers[customID] = handler
}

// HandleCommand dispatches an application command interaction.
func (r *CommandRegistry) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	log := logger.FromContext(context.Background())

	handler, ok := r.handlers[name]
	if !ok {
		log.Warn(LogMsgUnknownCommand, "command", name)
		respondError(s, i, MsgInternalError)
		return
	}

	log.Info(LogMsgCommandReceived, "command", name, "user_id", getInteractionUser(i).ID)

	start := time.Now()
	handler(s, i)

	metrics.CommandsHandled.WithLabelValues(name).Inc()
	metrics.CommandDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

// HandleComponent dispatches a message component interaction by custom ID.
func (r *CommandRegistry) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	handler, ok := r.componentHandlers[customID]
	if !ok {
		logger.FromContext(context.Background()).Warn(LogMsgUnknownComponent, "custom_id", customID)
		return
	}

	handler(s, i)
}

// Sync overwrites the application's registered commands with the registry's
// set. Discord deduplicates bulk overwrites server-side, so this is safe to
// run on every startup.
func (r *CommandRegistry) Sync(s *discordgo.Session, appID, guildID string) error {
	registered, err := s.ApplicationCommandBulkOverwrite(appID, guildID, r.commands)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToOverwriteCommands, err)
	}

	logger.FromContext(context.Background()).Info(LogMsgCommandsRegistered, "count", len(registered))
	return nil
}

// CommandNames returns the names of all registered commands.
func (r *CommandRegistry) CommandNames() []string {
	names := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		names = append(names, cmd.Name)
	}
	return names
}
