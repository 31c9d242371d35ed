package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HelpCommand creates the /help command. The handler reads the registry at
// interaction time, so the listing always matches whatever was registered,
// including commands added after this one.
func HelpCommand(registry *CommandRegistry) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "List the bot's commands",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		respondEphemeralEmbed(s, i, helpEmbed(registry.commands))
	}

	return cmd, handler
}

// helpEmbed renders one line per command, sorted by name so the listing is
// stable regardless of registration order.
func helpEmbed(commands []*discordgo.ApplicationCommand) *discordgo.MessageEmbed {
	sorted := make([]*discordgo.ApplicationCommand, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Name < sorted[b].Name })

	lines := make([]string, 0, len(sorted))
	for _, cmd := range sorted {
		lines = append(lines, fmt.Sprintf("`/%s` %s", cmd.Name, cmd.Description))
	}

	return createEmbed(EmbedTitleHelp, strings.Join(lines, "\n"))
}
