package leveling

import "time"

// LevelCurveExponent shapes the XP curve: total XP to reach level L is
// 100 * L^LevelCurveExponent
const LevelCurveExponent = 1.35

// CooldownCacheSize bounds the last-award cache. Entries past the TTL are
// evicted, so this is a ceiling on simultaneously tracked members, not a
// per-guild quota.
const CooldownCacheSize = 65536

// CooldownCacheTTL expires idle last-award entries. It only needs to
// exceed the longest configurable guild cooldown.
const CooldownCacheTTL = 24 * time.Hour

// DefaultLeaderboardLimit is the row count returned when the caller does
// not ask for a specific page size
const DefaultLeaderboardLimit = 10

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgXPAwarded          = "XP awarded"
	LogMsgLeveledUp          = "Member leveled up"
	LogMsgSettingsLoadFailed = "Failed to load guild settings, using defaults"
)

// ============================================================================
// Error Messages (local to leveling service)
// ============================================================================

const (
	ErrContextFailedToGetProfile     = "failed to get level profile"
	ErrContextFailedToSaveProfile    = "failed to save level profile"
	ErrContextFailedToGetRank        = "failed to get rank"
	ErrContextFailedToGetLeaderboard = "failed to get leaderboard"
	ErrContextFailedToTrackDailyXP   = "failed to track daily XP"
)
