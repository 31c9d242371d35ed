package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// LevelingRepository implements the leveling repository for PostgreSQL
type LevelingRepository struct {
	db *pgxpool.Pool
}

// NewLevelingRepository creates a new LevelingRepository
func NewLevelingRepository(db *pgxpool.Pool) *LevelingRepository {
	return &LevelingRepository{db: db}
}

// GetProfile retrieves a member's XP profile. Returns (nil, nil) when the
// member has never earned XP in the guild.
func (r *LevelingRepository) GetProfile(ctx context.Context, guildID, userID string) (*domain.LevelProfile, error) {
	var p domain.LevelProfile
	err := r.db.QueryRow(ctx, sqlGetProfile, guildID, userID).
		Scan(&p.UserID, &p.GuildID, &p.XP, &p.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile creates or updates a member's XP profile
func (r *LevelingRepository) UpsertProfile(ctx context.Context, p *domain.LevelProfile) error {
	_, err := r.db.Exec(ctx, sqlUpsertProfile, p.UserID, p.GuildID, p.XP, p.Level)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetRank returns the member's 1-based XP rank within the guild.
// Returns 0 when the member has no profile.
func (r *LevelingRepository) GetRank(ctx context.Context, guildID, userID string) (int, error) {
	var rank int
	err := r.db.QueryRow(ctx, sqlGetRank, guildID, userID).Scan(&rank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get rank: %w", err)
	}
	return rank, nil
}

// GetLeaderboard returns the top members of a guild ordered by total XP
func (r *LevelingRepository) GetLeaderboard(ctx context.Context, guildID string, limit int) ([]domain.LeaderboardRow, error) {
	rows, err := r.db.Query(ctx, sqlGetLeaderboard, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var board []domain.LeaderboardRow
	for rows.Next() {
		var row domain.LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.Level, &row.XP); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		board = append(board, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return board, nil
}

// IncrementDailyXP adds to a member's XP gain for one calendar day
func (r *LevelingRepository) IncrementDailyXP(ctx context.Context, guildID, userID, date string, amount int) error {
	_, err := r.db.Exec(ctx, sqlIncrementDailyXP, guildID, userID, date, amount)
	if err != nil {
		return fmt.Errorf("failed to increment daily xp: %w", err)
	}
	return nil
}

// GetDailyTopUser returns the member with the highest XP gain on the given
// date, or (nil, nil) when no XP was earned that day.
func (r *LevelingRepository) GetDailyTopUser(ctx context.Context, guildID, date string) (*domain.DailyTopUser, error) {
	var top domain.DailyTopUser
	err := r.db.QueryRow(ctx, sqlGetDailyTopUser, guildID, date).Scan(&top.UserID, &top.XPGain)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily top user: %w", err)
	}
	return &top, nil
}

// ResetDailyXP purges all daily XP rows for one date
func (r *LevelingRepository) ResetDailyXP(ctx context.Context, date string) error {
	_, err := r.db.Exec(ctx, sqlResetDailyXP, date)
	if err != nil {
		return fmt.Errorf("failed to reset daily xp: %w", err)
	}
	return nil
}
