package domain

// GuildSettings holds the per-guild configuration that admins can change at
// runtime. Zero values mean "use the configured default".
type GuildSettings struct {
	GuildID          string
	WelcomeChannelID string
	LevelupChannelID string
	XPCooldownSec    int
	MinXP            int
	MaxXP            int
}
