package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/giveaway"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/metrics"
)

var manageGuildPermission int64 = discordgo.PermissionManageGuild

// GiveawayStartCommand creates the /giveaway-start command.
func GiveawayStartCommand(svc giveaway.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	minDuration, maxDuration := float64(1), float64(20160)
	minWinners, maxWinners := float64(1), float64(50)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "giveaway-start",
		Description:              "Start a giveaway in this channel",
		DefaultMemberPermissions: &manageGuildPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "prize",
				Description: "What the winners receive",
				Required:    true,
				MaxLength:   256,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "duration",
				Description: "How long the giveaway runs, in minutes",
				Required:    true,
				MinValue:    &minDuration,
				MaxValue:    maxDuration,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "winners",
				Description: "How many winners to draw",
				Required:    true,
				MinValue:    &minWinners,
				MaxValue:    maxWinners,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx, cancel := handlerContext()
		defer cancel()

		if i.GuildID == "" {
			respondError(s, i, MsgNotInGuild)
			return
		}
		if !deferEphemeral(s, i) {
			return
		}

		opts := getOptions(i)
		params := giveaway.CreateParams{
			GuildID:         i.GuildID,
			ChannelID:       i.ChannelID,
			HostID:          getInteractionUser(i).ID,
			Prize:           opts["prize"].StringValue(),
			DurationMinutes: int(opts["duration"].IntValue()),
			WinnerCount:     int(opts["winners"].IntValue()),
		}

		g, err := svc.Create(ctx, params)
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			followUp(s, i, MsgInternalError)
			return
		}

		metrics.GiveawaysCreated.WithLabelValues(i.GuildID).Inc()
		followUp(s, i, fmt.Sprintf("Giveaway for **%s** started! It ends <t:%d:R>.", g.Prize, g.EndTime.Unix()))
	}

	return cmd, handler
}

// GiveawayEndCommand creates the /giveaway-end command, which finalizes a
// giveaway ahead of its scheduled end time.
func GiveawayEndCommand(svc giveaway.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "giveaway-end",
		Description:              "End a giveaway now and draw its winners",
		DefaultMemberPermissions: &manageGuildPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Message link or ID of the giveaway announcement",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx, cancel := handlerContext()
		defer cancel()

		if i.GuildID == "" {
			respondError(s, i, MsgNotInGuild)
			return
		}

		messageID, ok := parseMessageRef(getOptions(i)["message"].StringValue())
		if !ok {
			respondError(s, i, MsgInvalidMessageRef)
			return
		}
		if !deferEphemeral(s, i) {
			return
		}

		err := svc.ForceFinalize(ctx, i.GuildID, messageID)
		switch {
		case errors.Is(err, domain.ErrGiveawayNotFound):
			followUp(s, i, MsgGiveawayNotFound)
		case err != nil:
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			followUp(s, i, MsgInternalError)
		default:
			followUp(s, i, "Giveaway ended.")
		}
	}

	return cmd, handler
}

// GiveawayRerollCommand creates the /giveaway-reroll command.
func GiveawayRerollCommand(svc giveaway.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	minCount := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "giveaway-reroll",
		Description:              "Draw replacement winners for an ended giveaway",
		DefaultMemberPermissions: &manageGuildPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Message link or ID of the giveaway announcement",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "How many replacement winners to draw (default 1)",
				MinValue:    &minCount,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx, cancel := handlerContext()
		defer cancel()

		if i.GuildID == "" {
			respondError(s, i, MsgNotInGuild)
			return
		}

		opts := getOptions(i)
		messageID, ok := parseMessageRef(opts["message"].StringValue())
		if !ok {
			respondError(s, i, MsgInvalidMessageRef)
			return
		}

		count := 1
		if opt, present := opts["count"]; present {
			count = int(opt.IntValue())
		}
		if !deferEphemeral(s, i) {
			return
		}

		winners, err := svc.Reroll(ctx, messageID, count)
		switch {
		case errors.Is(err, domain.ErrGiveawayNotFound):
			followUp(s, i, MsgGiveawayNotFound)
		case errors.Is(err, domain.ErrGiveawayStillActive):
			followUp(s, i, MsgRerollStillActive)
		case errors.Is(err, domain.ErrNoEligibleEntrants):
			followUp(s, i, MsgRerollNoEligible)
		case err != nil:
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			followUp(s, i, MsgInternalError)
		default:
			metrics.GiveawayRerolls.WithLabelValues(i.GuildID).Inc()
			ids := make([]string, 0, len(winners))
			for _, w := range winners {
				ids = append(ids, w.UserID)
			}
			followUp(s, i, fmt.Sprintf("Rerolled winners: %s", mentionList(ids)))
		}
	}

	return cmd, handler
}

// GiveawayListCommand creates the /giveaway-list command, which shows the
// active giveaways in the current channel.
func GiveawayListCommand(svc giveaway.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "giveaway-list",
		Description: "List the active giveaways in this channel",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx, cancel := handlerContext()
		defer cancel()

		if i.GuildID == "" {
			respondError(s, i, MsgNotInGuild)
			return
		}
		if !deferEphemeral(s, i) {
			return
		}

		active, err := svc.ListActive(ctx, i.GuildID, i.ChannelID)
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			followUp(s, i, MsgInternalError)
			return
		}
		if len(active) == 0 {
			followUp(s, i, MsgNoActiveGiveaways)
			return
		}

		var b strings.Builder
		for _, g := range active {
			count, err := svc.CountEntries(ctx, g.MessageID)
			if err != nil {
				count = 0
			}
			fmt.Fprintf(&b, "**%s**: %d entries, ends <t:%d:R>\n", g.Prize, count, g.EndTime.Unix())
		}
		followUpEmbed(s, i, createEmbed(EmbedTitleGiveaway+"s", b.String()))
	}

	return cmd, handler
}

// handlerContext builds a bounded, request-scoped context for one
// interaction.
func handlerContext() (context.Context, context.CancelFunc) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	return context.WithTimeout(ctx, HandlerTimeout)
}
