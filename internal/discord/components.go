package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/atreus-labs/wardenbot/internal/giveaway"
	"github.com/atreus-labs/wardenbot/internal/metrics"
)

const entryOutcomeAccepted = "accepted"

// GiveawayEnterComponent returns the handler for the entry button on a live
// giveaway announcement. The button lives on the announcement message, so
// the message ID on the interaction is the giveaway ID.
func GiveawayEnterComponent(svc giveaway.Service) ComponentHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx, cancel := handlerContext()
		defer cancel()

		if !deferEphemeral(s, i) {
			return
		}

		admission := svc.AdmitEntry(ctx, i.Message.ID, getInteractionUser(i).ID)
		if admission.Accepted {
			metrics.GiveawayEntries.WithLabelValues(entryOutcomeAccepted).Inc()
			followUp(s, i, MsgEntryAccepted)
			return
		}

		metrics.GiveawayEntries.WithLabelValues(admission.Reason).Inc()
		followUp(s, i, entryRejectionMessage(admission.Reason))
	}
}

func entryRejectionMessage(reason string) string {
	switch reason {
	case giveaway.ReasonEnded:
		return MsgEntryEnded
	case giveaway.ReasonAlreadyEntered:
		return MsgEntryDuplicate
	default:
		return MsgEntryTransient
	}
}
