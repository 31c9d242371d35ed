package leveling

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/repository"
)

// Service defines the interface for leveling operations
type Service interface {
	// HandleMessage awards XP for one chat message. It returns nil when no
	// award happened (excluded channel or cooldown).
	HandleMessage(ctx context.Context, guildID, channelID, userID string) (*domain.XPResult, error)
	GetRank(ctx context.Context, guildID, userID string) (*RankInfo, error)
	GetLeaderboard(ctx context.Context, guildID string, limit int) ([]domain.LeaderboardRow, error)
}

// SettingsSource supplies per-guild XP settings. A nil result means the
// guild has no stored overrides and the config defaults apply.
type SettingsSource interface {
	Guild(ctx context.Context, guildID string) (*domain.GuildSettings, error)
}

// RankInfo is a member's position within a guild's leaderboard
type RankInfo struct {
	Profile     *domain.LevelProfile
	Rank        int
	NextLevelXP int
}

// Defaults are the XP parameters used for guilds without stored settings
type Defaults struct {
	Cooldown time.Duration
	MinXP    int
	MaxXP    int
}

type service struct {
	repo      repository.Leveling
	settings  SettingsSource
	cooldowns *cooldownCache
	excluded  map[string]struct{}
	defaults  Defaults
	randInt   func(n int) int
	now       func() time.Time
}

// NewService creates a new leveling service. excludedChannels lists channel
// IDs that never award XP.
func NewService(repo repository.Leveling, settings SettingsSource, defaults Defaults, excludedChannels []string) Service {
	excluded := make(map[string]struct{}, len(excludedChannels))
	for _, id := range excludedChannels {
		excluded[id] = struct{}{}
	}
	return &service{
		repo:      repo,
		settings:  settings,
		cooldowns: newCooldownCache(CooldownCacheSize, CooldownCacheTTL),
		excluded:  excluded,
		defaults:  defaults,
		randInt:   rand.IntN,
		now:       time.Now,
	}
}

func (s *service) HandleMessage(ctx context.Context, guildID, channelID, userID string) (*domain.XPResult, error) {
	if _, ok := s.excluded[channelID]; ok {
		return nil, nil
	}

	cooldown, minXP, maxXP := s.guildParams(ctx, guildID)
	if !s.cooldowns.Allow(guildID, userID, cooldown) {
		return nil, nil
	}

	award := minXP
	if maxXP > minXP {
		award += s.randInt(maxXP - minXP + 1)
	}

	profile, err := s.repo.GetProfile(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetProfile, err)
	}
	if profile == nil {
		profile = &domain.LevelProfile{UserID: userID, GuildID: guildID}
	}

	oldLevel := profile.Level
	profile.XP += award
	profile.Level = LevelFromXP(profile.XP)

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveProfile, err)
	}

	today := s.now().UTC().Format(time.DateOnly)
	if err := s.repo.IncrementDailyXP(ctx, guildID, userID, today, award); err != nil {
		// Daily tracking is an aside; the award itself already landed.
		logger.FromContext(ctx).Warn(ErrContextFailedToTrackDailyXP, "error", err, "guild_id", guildID, "user_id", userID)
	}

	result := &domain.XPResult{
		Awarded:   award,
		TotalXP:   profile.XP,
		OldLevel:  oldLevel,
		NewLevel:  profile.Level,
		LeveledUp: profile.Level > oldLevel,
	}
	if result.LeveledUp {
		logger.FromContext(ctx).Info(LogMsgLeveledUp, "guild_id", guildID, "user_id", userID, "level", profile.Level)
	}
	return result, nil
}

func (s *service) GetRank(ctx context.Context, guildID, userID string) (*RankInfo, error) {
	profile, err := s.repo.GetProfile(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetProfile, err)
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}

	rank, err := s.repo.GetRank(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRank, err)
	}

	return &RankInfo{
		Profile:     profile,
		Rank:        rank,
		NextLevelXP: XPForLevel(profile.Level + 1),
	}, nil
}

func (s *service) GetLeaderboard(ctx context.Context, guildID string, limit int) ([]domain.LeaderboardRow, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	rows, err := s.repo.GetLeaderboard(ctx, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetLeaderboard, err)
	}
	return rows, nil
}

// guildParams resolves the guild's XP settings, falling back to the
// configured defaults when no row exists or the lookup fails.
func (s *service) guildParams(ctx context.Context, guildID string) (time.Duration, int, int) {
	if s.settings == nil {
		return s.defaults.Cooldown, s.defaults.MinXP, s.defaults.MaxXP
	}
	gs, err := s.settings.Guild(ctx, guildID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSettingsLoadFailed, "error", err, "guild_id", guildID)
		return s.defaults.Cooldown, s.defaults.MinXP, s.defaults.MaxXP
	}
	if gs == nil {
		return s.defaults.Cooldown, s.defaults.MinXP, s.defaults.MaxXP
	}

	cooldown := s.defaults.Cooldown
	if gs.XPCooldownSec > 0 {
		cooldown = time.Duration(gs.XPCooldownSec) * time.Second
	}
	minXP, maxXP := s.defaults.MinXP, s.defaults.MaxXP
	if gs.MinXP > 0 && gs.MaxXP >= gs.MinXP {
		minXP, maxXP = gs.MinXP, gs.MaxXP
	}
	return cooldown, minXP, maxXP
}
