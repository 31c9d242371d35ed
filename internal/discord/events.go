package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/atreus-labs/wardenbot/internal/leveling"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/metrics"
	"github.com/atreus-labs/wardenbot/internal/settings"
)

// Listeners holds the gateway event handlers that run outside the
// interaction flow.
type Listeners struct {
	leveling  leveling.Service
	settings  settings.Service
	messenger *Messenger

	// Process-wide fallback channels, used when a guild has no stored
	// settings. Empty disables the corresponding announcement.
	welcomeFallback string
	levelupFallback string
}

func NewListeners(levelingSvc leveling.Service, settingsSvc settings.Service, messenger *Messenger, welcomeFallback, levelupFallback string) *Listeners {
	return &Listeners{
		leveling:        levelingSvc,
		settings:        settingsSvc,
		messenger:       messenger,
		welcomeFallback: welcomeFallback,
		levelupFallback: levelupFallback,
	}
}

// MessageCreate awards XP for guild chat messages and announces level ups
// to the guild's configured channel.
func (l *Listeners) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	ctx, cancel := handlerContext()
	defer cancel()
	log := logger.FromContext(ctx)

	result, err := l.leveling.HandleMessage(ctx, m.GuildID, m.ChannelID, m.Author.ID)
	if err != nil {
		log.Error(LogMsgXPHandlingFailed, "guild_id", m.GuildID, "user_id", m.Author.ID, "error", err)
		return
	}
	if result == nil {
		return
	}

	metrics.XPAwarded.WithLabelValues(m.GuildID).Add(float64(result.Awarded))
	if !result.LeveledUp {
		return
	}
	metrics.LevelUps.WithLabelValues(m.GuildID).Inc()

	channelID := l.levelupChannel(ctx, m.GuildID)
	if channelID == "" {
		return
	}

	embed := createEmbed("Level Up!",
		fmt.Sprintf("%s reached **level %d**! 🎉", mention(m.Author.ID), result.NewLevel))
	if err := l.messenger.SendEmbed(ctx, channelID, embed); err != nil {
		log.Warn(LogMsgLevelUpAnnounceFailed, "guild_id", m.GuildID, "error", err)
	}
}

// GuildMemberAdd welcomes new members in the guild's configured channel.
func (l *Listeners) GuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	ctx, cancel := handlerContext()
	defer cancel()

	channelID := l.welcomeChannel(ctx, m.GuildID)
	if channelID == "" {
		return
	}

	embed := createEmbed("Welcome!",
		fmt.Sprintf("Welcome to the server, %s! 👋", mention(m.User.ID)))
	if err := l.messenger.SendEmbed(ctx, channelID, embed); err != nil {
		logger.FromContext(ctx).Warn(LogMsgWelcomeFailed, "guild_id", m.GuildID, "error", err)
	}
}

func (l *Listeners) levelupChannel(ctx context.Context, guildID string) string {
	gs, err := l.settings.Guild(ctx, guildID)
	if err == nil && gs != nil && gs.LevelupChannelID != "" {
		return gs.LevelupChannelID
	}
	return l.levelupFallback
}

func (l *Listeners) welcomeChannel(ctx context.Context, guildID string) string {
	gs, err := l.settings.Guild(ctx, guildID)
	if err == nil && gs != nil && gs.WelcomeChannelID != "" {
		return gs.WelcomeChannelID
	}
	return l.welcomeFallback
}
