package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/atreus-labs/wardenbot/internal/logger"
)

// getInteractionUser returns the invoking user regardless of whether the
// interaction happened in a guild or a DM.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions maps a command's options by name for convenient lookup.
func getOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// deferResponse acknowledges the interaction so the handler gets more than
// three seconds to do real work. Returns false if the acknowledgement failed,
// in which case no followups can be delivered.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// deferEphemeral is deferResponse but the eventual followup is only visible
// to the invoking user.
func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// respondEphemeral sends an immediate reply only the invoking user can see.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgRespondFailed, "error", err)
	}
}

// respondEphemeralEmbed sends an immediate embed reply only the invoking user
// can see.
func respondEphemeralEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgRespondFailed, "error", err)
	}
}

// respondError is respondEphemeral under a name that reads better at error
// sites before a handler has deferred.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	respondEphemeral(s, i, msg)
}

// followUp sends a plain-text followup after a deferred response.
func followUp(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
	})
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgFollowupFailed, "error", err)
	}
}

// followUpEmbed sends an embed followup after a deferred response.
func followUpEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgFollowupFailed, "error", err)
	}
}

// createEmbed builds a basic embed with the bot's standard info color.
func createEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorInfo,
	}
}
