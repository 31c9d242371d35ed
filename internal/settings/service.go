package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/repository"
)

// Service defines the interface for per-guild settings
type Service interface {
	// Guild returns a guild's settings, or nil when none are stored.
	Guild(ctx context.Context, guildID string) (*domain.GuildSettings, error)

	// SetChannels updates the welcome and level-up channels. An empty ID
	// leaves the stored value unchanged.
	SetChannels(ctx context.Context, guildID, welcomeChannelID, levelupChannelID string) error

	// SetXPParams updates the XP cooldown and award range.
	SetXPParams(ctx context.Context, guildID string, cooldownSec, minXP, maxXP int) error

	// Warm loads every stored guild's settings into the in-process cache.
	Warm(ctx context.Context) error
}

type service struct {
	repo repository.Settings

	// cache is instance-owned and process-local; it is rebuilt by Warm on
	// startup and kept coherent by the setters.
	mu    sync.RWMutex
	cache map[string]*domain.GuildSettings
}

// NewService creates a new settings service
func NewService(repo repository.Settings) Service {
	return &service{
		repo:  repo,
		cache: make(map[string]*domain.GuildSettings),
	}
}

func (s *service) Warm(ctx context.Context) error {
	all, err := s.repo.ListGuildSettings(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToWarm, err)
	}

	s.mu.Lock()
	s.cache = make(map[string]*domain.GuildSettings, len(all))
	for _, gs := range all {
		s.cache[gs.GuildID] = gs
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSettingsWarmed, "guilds", len(all))
	return nil
}

func (s *service) Guild(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
	s.mu.RLock()
	cached, ok := s.cache[guildID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	gs, err := s.repo.GetGuildSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGet, err)
	}
	if gs != nil {
		s.mu.Lock()
		s.cache[guildID] = gs
		s.mu.Unlock()
	}
	return gs, nil
}

func (s *service) SetChannels(ctx context.Context, guildID, welcomeChannelID, levelupChannelID string) error {
	return s.update(ctx, guildID, func(gs *domain.GuildSettings) {
		if welcomeChannelID != "" {
			gs.WelcomeChannelID = welcomeChannelID
		}
		if levelupChannelID != "" {
			gs.LevelupChannelID = levelupChannelID
		}
	})
}

func (s *service) SetXPParams(ctx context.Context, guildID string, cooldownSec, minXP, maxXP int) error {
	if cooldownSec < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidXPParams, ErrMsgNegativeCooldown)
	}
	if minXP <= 0 || maxXP < minXP {
		return fmt.Errorf("%w: %s", domain.ErrInvalidXPParams, ErrMsgInvalidXPRange)
	}
	return s.update(ctx, guildID, func(gs *domain.GuildSettings) {
		gs.XPCooldownSec = cooldownSec
		gs.MinXP = minXP
		gs.MaxXP = maxXP
	})
}

// update applies a mutation on top of the guild's current settings and
// persists the result before refreshing the cache
func (s *service) update(ctx context.Context, guildID string, mutate func(*domain.GuildSettings)) error {
	current, err := s.Guild(ctx, guildID)
	if err != nil {
		return err
	}
	if current == nil {
		current = &domain.GuildSettings{GuildID: guildID}
	} else {
		copied := *current
		current = &copied
	}

	mutate(current)

	if err := s.repo.UpsertGuildSettings(ctx, current); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpsert, err)
	}

	s.mu.Lock()
	s.cache[guildID] = current
	s.mu.Unlock()
	return nil
}
