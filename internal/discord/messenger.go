package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/giveaway"
)

// Messenger adapts a discordgo session to the outbound messaging interfaces
// the services and workers depend on. All methods pass the caller's context
// through to the REST client so shutdown cancels in-flight requests.
type Messenger struct {
	session *discordgo.Session
}

func NewMessenger(session *discordgo.Session) *Messenger {
	return &Messenger{session: session}
}

// =============================================================================
// GIVEAWAY ANNOUNCEMENTS
// =============================================================================

// SendAnnouncement posts the live giveaway embed with its entry button and
// returns the new message ID.
func (m *Messenger) SendAnnouncement(ctx context.Context, g *domain.Giveaway) (string, error) {
	msg, err := m.session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{liveGiveawayEmbed(g, 0)},
		Components: []discordgo.MessageComponent{entryButtonRow(false)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextFailedToSendAnnouncement, err)
	}
	return msg.ID, nil
}

// MarkSetupFailed replaces the announcement content with a failure notice and
// disables the entry button.
func (m *Messenger) MarkSetupFailed(ctx context.Context, channelID, messageID string) error {
	embed := &discordgo.MessageEmbed{
		Title:       EmbedTitleSetupFailed,
		Description: MsgSetupFailedBody,
		Color:       ColorGiveawayFailed,
	}
	return m.editAnnouncement(ctx, channelID, messageID, embed, []discordgo.MessageComponent{entryButtonRow(true)})
}

// ResolveAnnouncement fetches the announcement message to prove the bot can
// still see it.
func (m *Messenger) ResolveAnnouncement(ctx context.Context, channelID, messageID string) error {
	_, err := m.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToFetchMessage, err)
	}
	return nil
}

// EditEnded rewrites the announcement into its ended state and disables the
// entry button.
func (m *Messenger) EditEnded(ctx context.Context, g *domain.Giveaway, outcome giveaway.EndedOutcome, winners []string) error {
	embed := endedGiveawayEmbed(g, outcome, winners)
	return m.editAnnouncement(ctx, g.ChannelID, g.MessageID, embed, []discordgo.MessageComponent{entryButtonRow(true)})
}

// AnnounceWinners posts the congratulatory reply under the announcement.
func (m *Messenger) AnnounceWinners(ctx context.Context, g *domain.Giveaway, winners []string) error {
	content := fmt.Sprintf("Congratulations %s! You won **%s**!", mentionList(winners), g.Prize)
	_, err := m.session.ChannelMessageSendReply(g.ChannelID, content, &discordgo.MessageReference{
		MessageID: g.MessageID,
		ChannelID: g.ChannelID,
		GuildID:   g.GuildID,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSendMessage, err)
	}
	return nil
}

// AppendReroll adds a rerolled-winners field to the ended announcement. The
// original winners field is left untouched so the full history stays visible.
func (m *Messenger) AppendReroll(ctx context.Context, g *domain.Giveaway, winners []string) error {
	msg, err := m.session.ChannelMessage(g.ChannelID, g.MessageID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToFetchMessage, err)
	}
	if len(msg.Embeds) == 0 {
		return fmt.Errorf("%s: message %s has no embed", ErrContextFailedToEditMessage, g.MessageID)
	}

	embed := msg.Embeds[0]
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  FieldNameRerolledWinners,
		Value: mentionList(winners),
	})

	return m.editAnnouncement(ctx, g.ChannelID, g.MessageID, embed, nil)
}

// UpdateEntryCount refreshes the entries field on a live announcement.
func (m *Messenger) UpdateEntryCount(ctx context.Context, channelID, messageID string, count int) error {
	msg, err := m.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToFetchMessage, err)
	}
	if len(msg.Embeds) == 0 {
		return fmt.Errorf("%s: message %s has no embed", ErrContextFailedToEditMessage, messageID)
	}

	embed := msg.Embeds[0]
	updated := false
	for _, f := range embed.Fields {
		if f.Name == FieldNameEntries {
			f.Value = fmt.Sprintf("%d", count)
			updated = true
			break
		}
	}
	if !updated {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   FieldNameEntries,
			Value:  fmt.Sprintf("%d", count),
			Inline: true,
		})
	}

	return m.editAnnouncement(ctx, channelID, messageID, embed, nil)
}

// =============================================================================
// MEMBER RESOLUTION
// =============================================================================

// ResolveMember returns the role IDs a member currently holds. The state
// cache is consulted first; a REST miss means the user left the guild.
func (m *Messenger) ResolveMember(ctx context.Context, guildID, userID string) ([]string, bool) {
	if member, err := m.session.State.Member(guildID, userID); err == nil {
		return member.Roles, true
	}

	member, err := m.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, false
	}
	return member.Roles, true
}

// =============================================================================
// WORKER SURFACES
// =============================================================================

// AnnounceDailyTop posts the daily most-active-member announcement.
func (m *Messenger) AnnounceDailyTop(ctx context.Context, channelID, userID string, xpGain int) error {
	embed := &discordgo.MessageEmbed{
		Title:       EmbedTitleDailyTop,
		Description: fmt.Sprintf("%s earned **%d XP** yesterday. Nice work!", mention(userID), xpGain),
		Color:       ColorInfo,
	}
	_, err := m.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSendMessage, err)
	}
	return nil
}

// GrantRole adds a role to a guild member.
func (m *Messenger) GrantRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := m.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToModifyRoles, err)
	}
	return nil
}

// RevokeRole removes a role from a guild member.
func (m *Messenger) RevokeRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := m.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToModifyRoles, err)
	}
	return nil
}

// SendRolePing posts a scheduled ping message mentioning the given role.
func (m *Messenger) SendRolePing(ctx context.Context, channelID, roleID, message string) error {
	content := fmt.Sprintf("<@&%s> %s", roleID, message)
	_, err := m.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Roles: []string{roleID},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSendMessage, err)
	}
	return nil
}

// PurgeChannel bulk-deletes recent messages from a channel and returns how
// many were removed. Discord's bulk endpoint caps at 100 per call and
// rejects messages older than two weeks, so this clears in batches until a
// fetch comes back empty.
func (m *Messenger) PurgeChannel(ctx context.Context, channelID string) (int, error) {
	deleted := 0
	for {
		msgs, err := m.session.ChannelMessages(channelID, 100, "", "", "", discordgo.WithContext(ctx))
		if err != nil {
			return deleted, fmt.Errorf("%s: %w", ErrContextFailedToListMessages, err)
		}
		if len(msgs) == 0 {
			return deleted, nil
		}

		ids := make([]string, 0, len(msgs))
		for _, msg := range msgs {
			ids = append(ids, msg.ID)
		}

		if err := m.session.ChannelMessagesBulkDelete(channelID, ids, discordgo.WithContext(ctx)); err != nil {
			return deleted, fmt.Errorf("%s: %w", ErrContextFailedToBulkDelete, err)
		}
		deleted += len(ids)

		if len(msgs) < 100 {
			return deleted, nil
		}
	}
}

// =============================================================================
// SENDING HELPERS
// =============================================================================

// SendEmbed posts a standalone embed to a channel. Used by the event
// listeners for welcome and level-up messages.
func (m *Messenger) SendEmbed(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) error {
	_, err := m.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSendMessage, err)
	}
	return nil
}

func (m *Messenger) editAnnouncement(ctx context.Context, channelID, messageID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	edit := &discordgo.MessageEdit{
		Channel: channelID,
		ID:      messageID,
		Embeds:  &[]*discordgo.MessageEmbed{embed},
	}
	if components != nil {
		edit.Components = &components
	}

	_, err := m.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToEditMessage, err)
	}
	return nil
}

// =============================================================================
// EMBED BUILDERS
// =============================================================================

func endedGiveawayEmbed(g *domain.Giveaway, outcome giveaway.EndedOutcome, winners []string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s: %s", EmbedTitleGiveawayEnded, g.Prize),
		Color: ColorGiveawayEnded,
	}

	switch outcome {
	case giveaway.OutcomeWinners:
		// The winners field never renders empty: Discord rejects embed
		// fields with no value.
		value := MsgNoWinnersDrawn
		if len(winners) > 0 {
			value = mentionList(winners)
		}
		embed.Fields = []*discordgo.MessageEmbedField{{
			Name:  FieldNameWinners,
			Value: value,
		}}
	case giveaway.OutcomeNoEntries:
		embed.Description = MsgGiveawayNoEntries
	case giveaway.OutcomeNoEligible:
		embed.Description = MsgGiveawayNoEligible
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   FieldNameHost,
		Value:  mention(g.HostID),
		Inline: true,
	})
	return embed
}

func liveGiveawayEmbed(g *domain.Giveaway, entries int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s: %s", EmbedTitleGiveaway, g.Prize),
		Description: MsgGiveawayEnterPrompt,
		Color:       ColorGiveawayActive,
		Fields: []*discordgo.MessageEmbedField{
			{Name: FieldNameEnds, Value: fmt.Sprintf("<t:%d:R>", g.EndTime.Unix()), Inline: true},
			{Name: FieldNameWinners, Value: fmt.Sprintf("%d", g.WinnerCount), Inline: true},
			{Name: FieldNameHost, Value: mention(g.HostID), Inline: true},
			{Name: FieldNameEntries, Value: fmt.Sprintf("%d", entries), Inline: true},
		},
	}
}

// entryButtonRow returns the action row holding the entry button. When a
// giveaway ends the button stays on the message but is disabled, which reads
// better than the button vanishing.
func entryButtonRow(disabled bool) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Enter",
				Style:    discordgo.PrimaryButton,
				CustomID: ComponentGiveawayEnter,
				Disabled: disabled,
				Emoji:    &discordgo.ComponentEmoji{Name: "🎉"},
			},
		},
	}
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

func mentionList(userIDs []string) string {
	mentions := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		mentions = append(mentions, mention(id))
	}
	return strings.Join(mentions, ", ")
}
