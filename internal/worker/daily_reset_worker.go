package worker

import (
	"context"
	"sync"
	"time"

	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/repository"
)

// Announcer posts the daily top-gainer shoutout to a guild channel
type Announcer interface {
	AnnounceDailyTop(ctx context.Context, channelID, userID string, xpGain int) error
}

// RoleGranter manages the vanity role held by each guild's daily top gainer
type RoleGranter interface {
	GrantRole(ctx context.Context, guildID, userID, roleID string) error
	RevokeRole(ctx context.Context, guildID, userID, roleID string) error
}

// DailyResetWorker announces each guild's top XP gainer at 00:00 UTC and
// clears the finished day's accumulation rows.
type DailyResetWorker struct {
	repo repository.Leveling
	// announceChannels maps guild ID to the channel for the daily shoutout.
	// Guilds without an entry are reset silently.
	announceChannels map[string]string
	announcer        Announcer

	// topRoleID is the vanity role moved to the new top gainer each day.
	// Empty disables role management.
	topRoleID string
	granter   RoleGranter
	// lastHolder tracks who currently wears the role per guild, so it can
	// be revoked before the next grant. Lost on restart, which only means
	// one stale holder keeps the role until they top the board again.
	lastHolder map[string]string

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyResetWorker creates a new DailyResetWorker
func NewDailyResetWorker(repo repository.Leveling, announcer Announcer, announceChannels map[string]string) *DailyResetWorker {
	return &DailyResetWorker{
		repo:             repo,
		announcer:        announcer,
		announceChannels: announceChannels,
		lastHolder:       make(map[string]string),
		shutdown:         make(chan struct{}),
	}
}

// WithTopRole enables moving a vanity role to each day's top gainer.
func (w *DailyResetWorker) WithTopRole(granter RoleGranter, roleID string) *DailyResetWorker {
	w.granter = granter
	w.topRoleID = roleID
	return w
}

// Start schedules the first reset
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

func (w *DailyResetWorker) scheduleNext() {
	duration := timeUntilNextReset()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		w.executeReset()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log := logger.FromContext(context.Background())
	log.Info(LogMsgDailyResetStarting, "next_reset_at", time.Now().UTC().Add(duration))
}

// executeReset announces yesterday's top gainers and clears the day's rows
// in a tracked goroutine
func (w *DailyResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)

		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly)

		for guildID, channelID := range w.announceChannels {
			top, err := w.repo.GetDailyTopUser(ctx, guildID, yesterday)
			if err != nil {
				log.Error(LogMsgDailyTopLookupFailed, "error", err, "guild_id", guildID, "date", yesterday)
				continue
			}
			if top == nil || top.XPGain <= 0 {
				continue
			}
			if err := w.announcer.AnnounceDailyTop(ctx, channelID, top.UserID, top.XPGain); err != nil {
				log.Error(LogMsgDailyTopAnnounceFailed, "error", err, "guild_id", guildID, "user_id", top.UserID)
			}
			w.moveTopRole(ctx, guildID, top.UserID)
		}

		if err := w.repo.ResetDailyXP(ctx, yesterday); err != nil {
			log.Error(LogMsgDailyResetFailed, "error", err, "date", yesterday)
			return
		}
		log.Info(LogMsgDailyResetCompleted, "date", yesterday)
	}()
}

// moveTopRole revokes the vanity role from its previous holder and grants it
// to the new top gainer. Failures are logged; the reset proceeds regardless.
func (w *DailyResetWorker) moveTopRole(ctx context.Context, guildID, userID string) {
	if w.granter == nil || w.topRoleID == "" {
		return
	}
	log := logger.FromContext(ctx)

	w.mu.Lock()
	prev := w.lastHolder[guildID]
	w.mu.Unlock()

	if prev != "" && prev != userID {
		if err := w.granter.RevokeRole(ctx, guildID, prev, w.topRoleID); err != nil {
			log.Warn(LogMsgTopRoleRevokeFailed, "error", err, "guild_id", guildID, "user_id", prev)
		}
	}
	if err := w.granter.GrantRole(ctx, guildID, userID, w.topRoleID); err != nil {
		log.Warn(LogMsgTopRoleGrantFailed, "error", err, "guild_id", guildID, "user_id", userID)
		return
	}

	w.mu.Lock()
	w.lastHolder[guildID] = userID
	w.mu.Unlock()
}

// Shutdown cancels the pending timer and waits for an in-flight reset
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down daily reset worker")

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Daily reset worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Daily reset worker shutdown timeout")
		return ctx.Err()
	}
}

// timeUntilNextReset calculates the duration until the next 00:00 UTC
func timeUntilNextReset() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next.Sub(now)
}
