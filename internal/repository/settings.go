package repository

import (
	"context"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// Settings defines the interface for per-guild settings storage
type Settings interface {
	GetGuildSettings(ctx context.Context, guildID string) (*domain.GuildSettings, error)
	UpsertGuildSettings(ctx context.Context, settings *domain.GuildSettings) error
	ListGuildSettings(ctx context.Context) ([]*domain.GuildSettings, error)
}
