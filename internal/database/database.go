package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atreus-labs/wardenbot/internal/logger"
)

// Pool is the subset of pgxpool.Pool the health endpoints depend on.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig sizes the connection pool. Bot load is bursty (entry spikes in
// the final minutes of a giveaway), so idle reclamation matters more than a
// large ceiling.
type PoolConfig struct {
	MaxConns        int32
	MinConns        int32
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
	PingTimeout     time.Duration
}

// DefaultPoolConfig returns the pool sizing used by the bot binary.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxConns:        DefaultMaxConnections,
		MinConns:        DefaultMinConnections,
		MaxConnIdleTime: DefaultConnIdleTime,
		MaxConnLifetime: DefaultConnLifetime,
		PingTimeout:     DefaultPingTimeout,
	}
}

// Connect builds the connection pool and proves the database is reachable
// before handing it back. The ping is bounded so a down database fails
// startup fast instead of hanging it.
func Connect(ctx context.Context, connString string, cfg PoolConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgDatabaseReady, "max_conns", cfg.MaxConns)
	return pool, nil
}
