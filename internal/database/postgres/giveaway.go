package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// GiveawayRepository implements the giveaway repository for PostgreSQL
type GiveawayRepository struct {
	db *pgxpool.Pool
}

// NewGiveawayRepository creates a new GiveawayRepository
func NewGiveawayRepository(db *pgxpool.Pool) *GiveawayRepository {
	return &GiveawayRepository{db: db}
}

// CreateGiveaway inserts a new giveaway record
func (r *GiveawayRepository) CreateGiveaway(ctx context.Context, g *domain.Giveaway) error {
	_, err := r.db.Exec(ctx, sqlCreateGiveaway,
		g.MessageID, g.ChannelID, g.GuildID, g.Prize, g.EndTime, g.WinnerCount, g.HostID, g.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create giveaway: %w", err)
	}
	return nil
}

// GetGiveaway retrieves a giveaway by its announcement message ID.
// Returns (nil, nil) when no row exists.
func (r *GiveawayRepository) GetGiveaway(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	row := r.db.QueryRow(ctx, sqlGetGiveaway, messageID)
	g, err := scanGiveaway(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}
	return g, nil
}

// ListActiveGiveaways returns all active giveaways for one guild
func (r *GiveawayRepository) ListActiveGiveaways(ctx context.Context, guildID string) ([]*domain.Giveaway, error) {
	rows, err := r.db.Query(ctx, sqlListActiveGiveaways, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active giveaways: %w", err)
	}
	defer rows.Close()
	return collectGiveaways(rows)
}

// ListDueGiveaways returns active giveaways whose end time has passed
func (r *GiveawayRepository) ListDueGiveaways(ctx context.Context, now time.Time) ([]*domain.Giveaway, error) {
	rows, err := r.db.Query(ctx, sqlListDueGiveaways, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due giveaways: %w", err)
	}
	defer rows.Close()
	return collectGiveaways(rows)
}

// DeactivateIfActive performs the compare-and-swap that closes a giveaway.
// Returns true only for the caller whose update actually flipped the flag,
// so concurrent finalize attempts cannot both proceed.
func (r *GiveawayRepository) DeactivateIfActive(ctx context.Context, messageID string) (bool, error) {
	tag, err := r.db.Exec(ctx, sqlDeactivateIfActive, messageID)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate giveaway: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AddEntry inserts an entry row. The primary key on (giveaway_id, user_id)
// is the sole duplicate detector; a 23505 maps to domain.ErrAlreadyEntered.
func (r *GiveawayRepository) AddEntry(ctx context.Context, entry *domain.Entry) error {
	_, err := r.db.Exec(ctx, sqlAddEntry, entry.GiveawayID, entry.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyEntered
		}
		return fmt.Errorf("failed to add entry: %w", err)
	}
	return nil
}

// CountEntries returns the number of entries for a giveaway
func (r *GiveawayRepository) CountEntries(ctx context.Context, giveawayID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, sqlCountEntries, giveawayID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// ListEntrantIDs returns the user IDs of all entrants for a giveaway
func (r *GiveawayRepository) ListEntrantIDs(ctx context.Context, giveawayID string) ([]string, error) {
	rows, err := r.db.Query(ctx, sqlListEntrantIDs, giveawayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entrants: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan entrant: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entrants: %w", err)
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGiveaway(row rowScanner) (*domain.Giveaway, error) {
	var g domain.Giveaway
	err := row.Scan(&g.MessageID, &g.ChannelID, &g.GuildID, &g.Prize,
		&g.EndTime, &g.WinnerCount, &g.HostID, &g.IsActive, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func collectGiveaways(rows pgx.Rows) ([]*domain.Giveaway, error) {
	var giveaways []*domain.Giveaway
	for rows.Next() {
		g, err := scanGiveaway(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan giveaway: %w", err)
		}
		giveaways = append(giveaways, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read giveaways: %w", err)
	}
	return giveaways, nil
}
