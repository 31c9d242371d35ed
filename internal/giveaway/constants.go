package giveaway

// DefaultWeight is the selection weight of an entrant holding no boosted role
const DefaultWeight = 1

// Admission reasons surfaced verbatim to the entering user
const (
	ReasonEnded          = "ended"
	ReasonAlreadyEntered = "already entered"
	ReasonTransient      = "transient error"
)

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgCreateCalled        = "Create giveaway called"
	LogMsgRerollCalled        = "Reroll called"
	LogMsgForceFinalizeCalled = "ForceFinalize called"
)

// Warning/Info messages
const (
	LogMsgAlreadyFinalized        = "Giveaway already finalized, skipping"
	LogMsgAnnouncementUnreachable = "Announcement message unreachable, giveaway closed without results"
	LogMsgSetupFailedEditFailed   = "Failed to mark orphan announcement as failed"
	LogMsgAdmitLookupFailed       = "Failed to look up giveaway for entry"
	LogMsgAddEntryFailed          = "Failed to record entry"
	LogMsgListEntrantsFailed      = "Failed to list entrants"
	LogMsgEditEndedFailed         = "Failed to edit announcement into ended state"
	LogMsgCongratsFailed          = "Failed to post winner announcement"
	LogMsgRerollEditFailed        = "Failed to append reroll field to announcement"
	LogMsgFinalizedDue            = "Finalized due giveaways"
	LogMsgRefreshCountFailed      = "Failed to refresh entry count"
)

// ============================================================================
// Error Messages (local to giveaway service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextInvalidCreateParams  = "invalid giveaway parameters"
	ErrContextFailedToAnnounce     = "failed to send giveaway announcement"
	ErrContextFailedToCreateRecord = "failed to create giveaway record"
	ErrContextFailedToGetGiveaway  = "failed to get giveaway"
	ErrContextFailedToListActive   = "failed to list active giveaways"
	ErrContextFailedToListDue      = "failed to list due giveaways"
	ErrContextFailedToListEntrants = "failed to list entrants"
	ErrContextFailedToCountEntries = "failed to count entries"
	ErrContextFailedToDeactivate   = "failed to deactivate giveaway"
)
