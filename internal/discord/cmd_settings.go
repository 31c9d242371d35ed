package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/metrics"
	"github.com/atreus-labs/wardenbot/internal/settings"
)

// ConfigCommand creates the /config command with its channels and xp
// subcommands for per-guild settings.
func ConfigCommand(svc settings.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	minZero := float64(0)
	minOne := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "config",
		Description:              "Configure the bot for this server",
		DefaultMemberPermissions: &manageGuildPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "channels",
				Description: "Set the welcome and level-up announcement channels",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "welcome",
						Description: "Channel for member welcome messages",
						ChannelTypes: []discordgo.ChannelType{
							discordgo.ChannelTypeGuildText,
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "levelup",
						Description: "Channel for level-up announcements",
						ChannelTypes: []discordgo.ChannelType{
							discordgo.ChannelTypeGuildText,
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "xp",
				Description: "Set the XP cooldown and award range",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "cooldown",
						Description: "Seconds between XP awards per member",
						Required:    true,
						MinValue:    &minZero,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "min",
						Description: "Minimum XP per message",
						Required:    true,
						MinValue:    &minOne,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "max",
						Description: "Maximum XP per message",
						Required:    true,
						MinValue:    &minOne,
					},
				},
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

		sub := i.ApplicationCommandData().Options[0]
		subOpts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
		for _, opt := range sub.Options {
			subOpts[opt.Name] = opt
		}
		if !deferEphemeral(s, i) {
			return
		}

		var err error
		switch sub.Name {
		case "channels":
			var welcomeID, levelupID string
			if opt, ok := subOpts["welcome"]; ok {
				welcomeID = opt.ChannelValue(nil).ID
			}
			if opt, ok := subOpts["levelup"]; ok {
				levelupID = opt.ChannelValue(nil).ID
			}
			err = svc.SetChannels(ctx, i.GuildID, welcomeID, levelupID)
		case "xp":
			err = svc.SetXPParams(ctx, i.GuildID,
				int(subOpts["cooldown"].IntValue()),
				int(subOpts["min"].IntValue()),
				int(subOpts["max"].IntValue()),
			)
		}

		switch {
		case errors.Is(err, domain.ErrInvalidXPParams):
			followUp(s, i, MsgXPRangeInvalid)
		case err != nil:
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			metrics.CommandErrors.WithLabelValues(cmd.Name).Inc()
			followUp(s, i, MsgInternalError)
		default:
			followUp(s, i, MsgSettingsSaved)
		}
	}

	return cmd, handler
}
