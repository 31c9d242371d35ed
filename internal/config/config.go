package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Discord
	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string // when set, commands register to this guild only

	// Metrics/health HTTP server
	Port int

	// Logging
	LogLevel    string
	LogFormat   string
	Environment string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Giveaways
	GiveawayCheckInterval time.Duration
	EntryRefreshDelay     time.Duration
	RoleWeights           map[string]int // role ID -> selection weight bonus

	// Leveling
	XPCooldown       time.Duration
	XPMin            int
	XPMax            int
	ExcludedChannels []string
	DailyTopRoleID   string
	DailyAnnounceMap map[string]string // guild ID -> announce channel ID

	// Default announcement channels (per-guild overrides live in guild_settings)
	WelcomeChannelID string
	LevelupChannelID string

	// Role pings
	ScheduleFile string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordAppID:     os.Getenv("DISCORD_APP_ID"),
		DiscordGuildID:   os.Getenv("DISCORD_GUILD_ID"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		Environment:      getEnv("ENVIRONMENT", "dev"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "wardenbot"),
		WelcomeChannelID: os.Getenv("WELCOME_CHANNEL_ID"),
		LevelupChannelID: os.Getenv("LEVELUP_CHANNEL_ID"),
		DailyTopRoleID:   os.Getenv("DAILY_TOP_ROLE_ID"),
		ScheduleFile:     getEnv("SCHEDULE_FILE", ""),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable must be set")
	}
	if cfg.DiscordAppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID environment variable must be set")
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}

	checkSecs, err := getEnvInt("GIVEAWAY_CHECK_INTERVAL_SECONDS", DefaultGiveawayCheckSeconds)
	if err != nil {
		return nil, err
	}
	cfg.GiveawayCheckInterval = time.Duration(checkSecs) * time.Second

	refreshSecs, err := getEnvInt("ENTRY_REFRESH_DELAY_SECONDS", DefaultEntryRefreshSeconds)
	if err != nil {
		return nil, err
	}
	cfg.EntryRefreshDelay = time.Duration(refreshSecs) * time.Second

	cooldownSecs, err := getEnvInt("XP_COOLDOWN_SECONDS", DefaultXPCooldownSeconds)
	if err != nil {
		return nil, err
	}
	cfg.XPCooldown = time.Duration(cooldownSecs) * time.Second

	if cfg.XPMin, err = getEnvInt("XP_MIN", DefaultXPMin); err != nil {
		return nil, err
	}
	if cfg.XPMax, err = getEnvInt("XP_MAX", DefaultXPMax); err != nil {
		return nil, err
	}
	if cfg.XPMax < cfg.XPMin {
		return nil, fmt.Errorf("XP_MAX (%d) must not be less than XP_MIN (%d)", cfg.XPMax, cfg.XPMin)
	}

	if cfg.RoleWeights, err = parsePairs(os.Getenv("GIVEAWAY_ROLE_WEIGHTS")); err != nil {
		return nil, fmt.Errorf("invalid GIVEAWAY_ROLE_WEIGHTS: %w", err)
	}

	cfg.ExcludedChannels = splitList(os.Getenv("XP_EXCLUDED_CHANNELS"))

	dailyMap, err := parseStringPairs(os.Getenv("DAILY_ANNOUNCE_CHANNELS"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_ANNOUNCE_CHANNELS: %w", err)
	}
	cfg.DailyAnnounceMap = dailyMap

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// parsePairs parses "id:weight,id:weight" lists used for role weight config.
func parsePairs(raw string) (map[string]int, error) {
	out := make(map[string]int)
	for _, pair := range splitList(raw) {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected id:weight, got %q", pair)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("weight for %q: %w", parts[0], err)
		}
		if weight <= 0 {
			return nil, fmt.Errorf("weight for %q must be positive", parts[0])
		}
		out[strings.TrimSpace(parts[0])] = weight
	}
	return out, nil
}

// parseStringPairs parses "key:value,key:value" lists.
func parseStringPairs(raw string) (map[string]string, error) {
	out := make(map[string]string)
	for _, pair := range splitList(raw) {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected key:value, got %q", pair)
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
