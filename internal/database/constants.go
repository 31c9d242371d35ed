package database

import "time"

// Pool sizing defaults
const (
	DefaultMaxConnections = 10
	DefaultMinConnections = 2
	DefaultConnIdleTime   = 5 * time.Minute
	DefaultConnLifetime   = 30 * time.Minute
	DefaultPingTimeout    = 5 * time.Second
)

// Error contexts
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log messages
const (
	LogMsgDatabaseReady     = "Database connection pool ready"
	LogMsgMigrationsApplied = "Database migrations applied"
)
