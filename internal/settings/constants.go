package settings

// Log messages
const (
	LogMsgSettingsWarmed = "Guild settings cache warmed"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToWarm   = "failed to warm guild settings cache"
	ErrContextFailedToGet    = "failed to get guild settings"
	ErrContextFailedToUpsert = "failed to upsert guild settings"
)

// Validation error messages
const (
	ErrMsgNegativeCooldown = "xp cooldown must not be negative"
	ErrMsgInvalidXPRange   = "xp range must satisfy 0 < min <= max"
)
