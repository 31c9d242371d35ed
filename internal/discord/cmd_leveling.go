package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/leveling"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/metrics"
)

// xpPrinter formats XP totals with thousands separators.
var xpPrinter = message.NewPrinter(language.English)

// RankCommand creates the /rank command, which shows a member's level, XP
// and leaderboard position.
func RankCommand(svc leveling.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rank",
		Description: "Show your level and XP, or another member's",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "member",
				Description: "Member to look up (defaults to you)",
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

		target := getInteractionUser(i)
		if opt, ok := getOptions(i)["member"]; ok {
			target = opt.UserValue(s)
		}
		if !deferResponse(s, i) {
			return
		}

		info, err := svc.GetRank(ctx, i.GuildID, target.ID)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			followUp(s, i, MsgRankNoProfile)
		case err != nil:
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			followUp(s, i, MsgInternalError)
		default:
			followUpEmbed(s, i, rankEmbed(target, info))
		}
	}

	return cmd, handler
}

// LeaderboardCommand creates the /leaderboard command.
func LeaderboardCommand(svc leveling.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	minLimit, maxLimit := float64(1), float64(25)

	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the top members by XP",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "size",
				Description: "How many members to show (default 10)",
				MinValue:    &minLimit,
				MaxValue:    maxLimit,
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

		limit := 0
		if opt, ok := getOptions(i)["size"]; ok {
			limit = int(opt.IntValue())
		}
		if !deferResponse(s, i) {
			return
		}

		rows, err := svc.GetLeaderboard(ctx, i.GuildID, limit)
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			followUp(s, i, MsgInternalError)
			return
		}
		if len(rows) == 0 {
			followUp(s, i, MsgLeaderboardEmpty)
			return
		}

		var b strings.Builder
		for idx, row := range rows {
			fmt.Fprintf(&b, "%s %s | Level %d | %s XP\n",
				rankBadge(idx+1), mention(row.UserID), row.Level, xpPrinter.Sprintf("%d", row.XP))
		}
		followUpEmbed(s, i, createEmbed(EmbedTitleLeaderboard, b.String()))
	}

	return cmd, handler
}

func rankEmbed(user *discordgo.User, info *leveling.RankInfo) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s: %s", EmbedTitleRank, user.Username),
		Color: ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Rank", Value: fmt.Sprintf("#%d", info.Rank), Inline: true},
			{Name: "Level", Value: fmt.Sprintf("%d", info.Profile.Level), Inline: true},
			{
				Name:   "XP",
				Value:  xpPrinter.Sprintf("%d / %d", info.Profile.XP, info.NextLevelXP),
				Inline: true,
			},
		},
	}
}

// rankBadge decorates the top three leaderboard positions.
func rankBadge(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", position)
	}
}
