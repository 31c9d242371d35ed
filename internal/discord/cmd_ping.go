package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// PingCommand creates the /ping command for checking gateway latency.
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		respondEphemeral(s, i, fmt.Sprintf("Pong! Gateway latency: %dms", s.HeartbeatLatency().Milliseconds()))
	}

	return cmd, handler
}
