package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Giveaway Worker
// ============================================================================

// Log messages for giveaway due-check operations
const (
	LogMsgGiveawayCheckFailed    = "Giveaway due check failed"
	LogMsgGiveawayCheckRecovered = "Giveaway due check panicked"
)

// ============================================================================
// Log Messages - Daily Reset Worker
// ============================================================================

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStarting     = "Daily XP reset starting"
	LogMsgDailyResetCompleted    = "Daily XP reset completed"
	LogMsgDailyResetFailed       = "Daily XP reset failed"
	LogMsgDailyTopLookupFailed   = "Failed to look up daily top user"
	LogMsgDailyTopAnnounceFailed = "Failed to announce daily top user"
	LogMsgTopRoleGrantFailed     = "Failed to grant daily top role"
	LogMsgTopRoleRevokeFailed    = "Failed to revoke daily top role"
)

// ============================================================================
// Log Messages - Ping Worker
// ============================================================================

// Log messages for scheduled ping operations
const (
	LogMsgScheduledPingSent    = "Scheduled role ping sent"
	LogMsgScheduledPingFailed  = "Scheduled role ping failed"
	LogMsgScheduledPurgeDone   = "Scheduled channel purge completed"
	LogMsgScheduledPurgeFailed = "Scheduled channel purge failed"
)
