package discord

import "time"

// =============================================================================
// COMPONENT IDS
// =============================================================================

const (
	// ComponentGiveawayEnter is the custom ID on the entry button attached
	// to a live giveaway announcement.
	ComponentGiveawayEnter = "giveaway:enter"
)

// =============================================================================
// EMBED TEXT
// =============================================================================

const (
	EmbedTitleGiveaway      = "🎉 Giveaway"
	EmbedTitleGiveawayEnded = "🎉 Giveaway Ended"
	EmbedTitleSetupFailed   = "⚠️ Giveaway Setup Failed"
	EmbedTitleRank          = "Rank"
	EmbedTitleLeaderboard   = "Leaderboard"
	EmbedTitleDailyTop      = "🏆 Most Active Yesterday"
	EmbedTitleHelp          = "Commands"

	FieldNameEnds            = "Ends"
	FieldNameWinners         = "Winners"
	FieldNameHost            = "Hosted by"
	FieldNameEntries         = "Entries"
	FieldNameRerolledWinners = "Rerolled Winners"

	MsgGiveawayEnterPrompt = "Press the button below to enter!"
	MsgGiveawayNoEntries   = "No one entered this giveaway."
	MsgGiveawayNoEligible  = "No eligible entrants remained when the giveaway ended."
	MsgNoWinnersDrawn      = "No one"
	MsgSetupFailedBody     = "This giveaway could not be set up. Entries on this message will not be counted."
)

// =============================================================================
// REPLY TEXT
// =============================================================================

const (
	MsgEntryAccepted     = "You're in! Good luck 🎉"
	MsgEntryEnded        = "That giveaway has already ended."
	MsgEntryDuplicate    = "You have already entered this giveaway."
	MsgEntryTransient    = "Something went wrong recording your entry. Please try again."
	MsgGiveawayNotFound  = "No giveaway was found for that message."
	MsgNoActiveGiveaways = "There are no active giveaways in this channel."
	MsgInternalError     = "Something went wrong. Please try again later."
	MsgNotInGuild        = "This command only works inside a server."
	MsgInvalidMessageRef = "That doesn't look like a message link or message ID."
	MsgRerollNoEligible  = "No eligible entrants are left to reroll from."
	MsgRerollStillActive = "That giveaway is still running. End it before rerolling."
	MsgRankNoProfile     = "You haven't earned any XP here yet. Say something first!"
	MsgLeaderboardEmpty  = "Nobody has earned XP in this server yet."
	MsgSettingsSaved     = "Settings updated."
	MsgXPRangeInvalid    = "Invalid XP settings. Cooldown must be >= 0 and 0 < min <= max."
)

// =============================================================================
// EMBED COLORS
// =============================================================================

const (
	ColorGiveawayActive = 0x5865F2
	ColorGiveawayEnded  = 0x57F287
	ColorGiveawayFailed = 0xED4245
	ColorInfo           = 0x5865F2
	ColorError          = 0xED4245
)

// =============================================================================
// LOG MESSAGES
// =============================================================================

const (
	LogMsgBotConnected          = "Bot connected to gateway"
	LogMsgBotStopping           = "Bot shutting down"
	LogMsgCommandsRegistered    = "Slash commands registered"
	LogMsgCommandReceived       = "Command received"
	LogMsgUnknownCommand        = "Unknown command received"
	LogMsgUnknownComponent      = "Unknown component interaction received"
	LogMsgCommandFailed         = "Command handler failed"
	LogMsgDeferFailed           = "Failed to defer interaction response"
	LogMsgRespondFailed         = "Failed to respond to interaction"
	LogMsgFollowupFailed        = "Failed to send interaction followup"
	LogMsgWelcomeFailed         = "Failed to send welcome message"
	LogMsgLevelUpAnnounceFailed = "Failed to announce level up"
	LogMsgXPHandlingFailed      = "Failed to handle message XP"
)

// =============================================================================
// ERROR CONTEXTS
// =============================================================================

const (
	ErrContextFailedToOpenGateway       = "failed to open gateway connection"
	ErrContextFailedToCreateSession     = "failed to create discord session"
	ErrContextFailedToFetchCommands     = "failed to fetch registered commands"
	ErrContextFailedToOverwriteCommands = "failed to overwrite commands"
	ErrContextFailedToSendAnnouncement  = "failed to send giveaway announcement"
	ErrContextFailedToFetchMessage      = "failed to fetch announcement message"
	ErrContextFailedToEditMessage       = "failed to edit announcement message"
	ErrContextFailedToSendMessage       = "failed to send message"
	ErrContextFailedToFetchMember       = "failed to fetch guild member"
	ErrContextFailedToListMessages      = "failed to list channel messages"
	ErrContextFailedToBulkDelete        = "failed to bulk delete messages"
	ErrContextFailedToModifyRoles       = "failed to modify member roles"
)

// =============================================================================
// TIMEOUTS
// =============================================================================

const (
	// HandlerTimeout bounds the work done for a single gateway event.
	HandlerTimeout = 30 * time.Second
)
