package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// SettingsRepository implements the guild settings repository for PostgreSQL
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetGuildSettings retrieves settings for one guild.
// Returns (nil, nil) when the guild has no stored settings.
func (r *SettingsRepository) GetGuildSettings(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
	s, err := scanSettings(r.db.QueryRow(ctx, sqlGetGuildSettings, guildID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}
	return s, nil
}

// UpsertGuildSettings creates or replaces a guild's settings row
func (r *SettingsRepository) UpsertGuildSettings(ctx context.Context, s *domain.GuildSettings) error {
	_, err := r.db.Exec(ctx, sqlUpsertGuildSettings,
		s.GuildID, s.WelcomeChannelID, s.LevelupChannelID, s.XPCooldownSec, s.MinXP, s.MaxXP)
	if err != nil {
		return fmt.Errorf("failed to upsert guild settings: %w", err)
	}
	return nil
}

// ListGuildSettings returns settings for every guild, used to warm
// in-process caches on startup
func (r *SettingsRepository) ListGuildSettings(ctx context.Context) ([]*domain.GuildSettings, error) {
	rows, err := r.db.Query(ctx, sqlListGuildSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild settings: %w", err)
	}
	defer rows.Close()

	var all []*domain.GuildSettings
	for rows.Next() {
		s, err := scanSettings(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guild settings: %w", err)
		}
		all = append(all, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read guild settings: %w", err)
	}
	return all, nil
}

func scanSettings(row rowScanner) (*domain.GuildSettings, error) {
	var s domain.GuildSettings
	err := row.Scan(&s.GuildID, &s.WelcomeChannelID, &s.LevelupChannelID,
		&s.XPCooldownSec, &s.MinXP, &s.MaxXP)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
