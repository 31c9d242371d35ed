package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/atreus-labs/wardenbot/internal/logger"
)

// Config carries the gateway credentials and command registration scope.
type Config struct {
	Token string
	AppID string
	// GuildID scopes command registration to a single guild when set.
	// Guild commands propagate instantly, which is what you want in dev.
	GuildID string
}

// Bot owns the gateway session and routes interactions to the registry.
type Bot struct {
	Session  *discordgo.Session
	cfg      Config
	registry *CommandRegistry
	events   *Listeners
}

// New creates the session without opening it. Listeners may be nil when the
// bot only serves slash commands.
func New(cfg Config, registry *CommandRegistry, events *Listeners) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateSession, err)
	}

	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildMembers |
		discordgo.IntentMessageContent

	return &Bot{
		Session:  session,
		cfg:      cfg,
		registry: registry,
		events:   events,
	}, nil
}

// SetListeners installs the gateway event listeners. Must be called before
// Start; listeners added after the session opens would miss early events.
func (b *Bot) SetListeners(events *Listeners) {
	b.events = events
}

// Start opens the gateway connection and registers slash commands.
func (b *Bot) Start(ctx context.Context) error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	if b.events != nil {
		b.Session.AddHandler(b.events.MessageCreate)
		b.Session.AddHandler(b.events.GuildMemberAdd)
	}

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToOpenGateway, err)
	}

	if err := b.registry.Sync(b.Session, b.cfg.AppID, b.cfg.GuildID); err != nil {
		b.Session.Close()
		return err
	}

	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() {
	logger.FromContext(context.Background()).Info(LogMsgBotStopping)
	if err := b.Session.Close(); err != nil {
		logger.FromContext(context.Background()).Warn("Failed to close gateway session", "error", err)
	}
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	logger.FromContext(context.Background()).Info(LogMsgBotConnected,
		"username", r.User.Username,
		"guilds", len(r.Guilds),
	)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.registry.HandleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.registry.HandleComponent(s, i)
	}
}
