package repository

import (
	"context"
	"time"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// Giveaway defines the interface for data access required by the giveaway service
type Giveaway interface {
	CreateGiveaway(ctx context.Context, giveaway *domain.Giveaway) error
	GetGiveaway(ctx context.Context, messageID string) (*domain.Giveaway, error)
	ListActiveGiveaways(ctx context.Context, guildID string) ([]*domain.Giveaway, error)
	ListDueGiveaways(ctx context.Context, now time.Time) ([]*domain.Giveaway, error)

	// DeactivateIfActive flips is_active from true to false as a single
	// conditional update. It returns true iff this call performed the flip,
	// which makes it the atomic guard against double finalization across
	// processes.
	DeactivateIfActive(ctx context.Context, messageID string) (bool, error)

	// AddEntry inserts an entry. A uniqueness violation on
	// (giveaway_id, user_id) is returned as domain.ErrAlreadyEntered.
	AddEntry(ctx context.Context, entry *domain.Entry) error
	CountEntries(ctx context.Context, giveawayID string) (int, error)
	ListEntrantIDs(ctx context.Context, giveawayID string) ([]string, error)
}
