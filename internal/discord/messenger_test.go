package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/giveaway"
)

func testGiveaway() *domain.Giveaway {
	return &domain.Giveaway{
		MessageID:   "msg1",
		ChannelID:   "chan1",
		GuildID:     "guild1",
		Prize:       "Nitro",
		EndTime:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		WinnerCount: 2,
		HostID:      "host1",
		IsActive:    true,
	}
}

func TestLiveGiveawayEmbed(t *testing.T) {
	g := testGiveaway()
	embed := liveGiveawayEmbed(g, 0)

	assert.Equal(t, "🎉 Giveaway: Nitro", embed.Title)
	assert.Equal(t, ColorGiveawayActive, embed.Color)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, FieldNameEnds, embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "<t:")
	assert.Equal(t, "2", embed.Fields[1].Value)
	assert.Equal(t, "<@host1>", embed.Fields[2].Value)
	assert.Equal(t, "0", embed.Fields[3].Value)
}

func TestEndedGiveawayEmbed_Winners(t *testing.T) {
	embed := endedGiveawayEmbed(testGiveaway(), giveaway.OutcomeWinners, []string{"u1", "u2"})

	assert.Equal(t, "🎉 Giveaway Ended: Nitro", embed.Title)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, FieldNameWinners, embed.Fields[0].Name)
	assert.Equal(t, "<@u1>, <@u2>", embed.Fields[0].Value)
	assert.Equal(t, "<@host1>", embed.Fields[1].Value)
}

func TestEndedGiveawayEmbed_EmptyWinnerListGetsSentinel(t *testing.T) {
	embed := endedGiveawayEmbed(testGiveaway(), giveaway.OutcomeWinners, nil)

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, MsgNoWinnersDrawn, embed.Fields[0].Value)
	assert.NotEmpty(t, embed.Fields[0].Value)
}

func TestEndedGiveawayEmbed_NoEntrantOutcomes(t *testing.T) {
	noEntries := endedGiveawayEmbed(testGiveaway(), giveaway.OutcomeNoEntries, nil)
	assert.Equal(t, MsgGiveawayNoEntries, noEntries.Description)
	require.Len(t, noEntries.Fields, 1)

	noEligible := endedGiveawayEmbed(testGiveaway(), giveaway.OutcomeNoEligible, nil)
	assert.Equal(t, MsgGiveawayNoEligible, noEligible.Description)
}

func TestEntryButtonRow(t *testing.T) {
	row := entryButtonRow(false)
	require.Len(t, row.Components, 1)

	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, ComponentGiveawayEnter, button.CustomID)
	assert.False(t, button.Disabled)

	assert.True(t, entryButtonRow(true).Components[0].(discordgo.Button).Disabled)
}

func TestMentionList(t *testing.T) {
	assert.Equal(t, "", mentionList(nil))
	assert.Equal(t, "<@a>", mentionList([]string{"a"}))
	assert.Equal(t, "<@a>, <@b>", mentionList([]string{"a", "b"}))
}

func TestEntryRejectionMessage(t *testing.T) {
	assert.Equal(t, MsgEntryEnded, entryRejectionMessage(giveaway.ReasonEnded))
	assert.Equal(t, MsgEntryDuplicate, entryRejectionMessage(giveaway.ReasonAlreadyEntered))
	assert.Equal(t, MsgEntryTransient, entryRejectionMessage(giveaway.ReasonTransient))
	assert.Equal(t, MsgEntryTransient, entryRejectionMessage("anything else"))
}

func TestRankBadge(t *testing.T) {
	assert.Equal(t, "🥇", rankBadge(1))
	assert.Equal(t, "🥈", rankBadge(2))
	assert.Equal(t, "🥉", rankBadge(3))
	assert.Equal(t, "`#4`", rankBadge(4))
}
