package config

// Default values for optional configuration
const (
	DefaultPort                 = 8080
	DefaultGiveawayCheckSeconds = 30
	DefaultEntryRefreshSeconds  = 3
	DefaultXPCooldownSeconds    = 60
	DefaultXPMin                = 5
	DefaultXPMax                = 15
)
