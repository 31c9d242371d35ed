package worker

import (
	"context"
	"sync"
	"time"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/logger"
)

// Pinger sends scheduled role pings and performs channel purges
type Pinger interface {
	SendRolePing(ctx context.Context, channelID, roleID, message string) error
	PurgeChannel(ctx context.Context, channelID string) (int, error)
}

// PingWorker fires configured role pings and channel purges on their
// wall-clock schedule. It runs as a once-a-minute job; each schedule fires
// at most once per minute even if ticks bunch up after a stall.
type PingWorker struct {
	pinger    Pinger
	schedules []domain.PingSchedule
	now       func() time.Time

	mu        sync.Mutex
	lastPing  map[int]time.Time
	lastPurge map[int]time.Time
}

// NewPingWorker creates a new PingWorker
func NewPingWorker(pinger Pinger, schedules []domain.PingSchedule) *PingWorker {
	return &PingWorker{
		pinger:    pinger,
		schedules: schedules,
		now:       time.Now,
		lastPing:  make(map[int]time.Time),
		lastPurge: make(map[int]time.Time),
	}
}

// Process implements [Job]
func (w *PingWorker) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	now := w.now().Truncate(time.Minute)

	for i := range w.schedules {
		sched := &w.schedules[i]

		if sched.PingDueAt(now) && w.claim(w.lastPing, i, now) {
			if err := w.pinger.SendRolePing(ctx, sched.ChannelID, sched.RoleID, sched.Message); err != nil {
				log.Error(LogMsgScheduledPingFailed, "error", err, "channel_id", sched.ChannelID, "role_id", sched.RoleID)
			} else {
				log.Info(LogMsgScheduledPingSent, "channel_id", sched.ChannelID, "role_id", sched.RoleID)
			}
		}

		if sched.PurgeDueAt(now) && w.claim(w.lastPurge, i, now) {
			deleted, err := w.pinger.PurgeChannel(ctx, sched.ChannelID)
			if err != nil {
				log.Error(LogMsgScheduledPurgeFailed, "error", err, "channel_id", sched.ChannelID)
			} else {
				log.Info(LogMsgScheduledPurgeDone, "channel_id", sched.ChannelID, "deleted", deleted)
			}
		}
	}
	return nil
}

// claim records that schedule i fired at minute now, returning false if it
// already fired this minute
func (w *PingWorker) claim(last map[int]time.Time, i int, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if last[i].Equal(now) {
		return false
	}
	last[i] = now
	return true
}
