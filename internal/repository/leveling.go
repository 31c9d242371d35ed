package repository

import (
	"context"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// Leveling defines the interface for data access required by the leveling service
type Leveling interface {
	GetProfile(ctx context.Context, guildID, userID string) (*domain.LevelProfile, error)
	UpsertProfile(ctx context.Context, profile *domain.LevelProfile) error
	GetRank(ctx context.Context, guildID, userID string) (int, error)
	GetLeaderboard(ctx context.Context, guildID string, limit int) ([]domain.LeaderboardRow, error)

	// Daily XP tracking for the "top gainer yesterday" award.
	IncrementDailyXP(ctx context.Context, guildID, userID, date string, amount int) error
	GetDailyTopUser(ctx context.Context, guildID, date string) (*domain.DailyTopUser, error)
	ResetDailyXP(ctx context.Context, date string) error
}
