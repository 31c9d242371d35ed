package server

import "time"

// ReadyzPingTimeout bounds the database ping in the readiness check
const ReadyzPingTimeout = 2 * time.Second

// Health response statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Health response messages
const (
	MsgDatabaseUnreachable = "database unreachable"
)

// Log messages
const (
	LogMsgReadinessCheckFailed = "Readiness check failed"
)

// Error context messages for wrapped errors
const (
	ErrContextServerFailed = "http server failed"
)
