package giveaway

import (
	"context"
	"sync"
	"time"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/repository"
)

// refresher coalesces entry-count updates on a live announcement. A burst
// of admissions within the debounce window produces a single edit: the
// first admission arms a timer keyed by message ID, later admissions find
// the timer already pending and do nothing. When the timer fires the count
// is re-read from the store, so the displayed value self-corrects under
// concurrent admissions from other replicas.
type refresher struct {
	repo      repository.Giveaway
	messenger Messenger
	delay     time.Duration

	mu        sync.Mutex
	pending   map[string]*time.Timer
	lastShown map[string]int
	stopped   bool
	wg        sync.WaitGroup
}

func newRefresher(repo repository.Giveaway, messenger Messenger, delay time.Duration) *refresher {
	return &refresher{
		repo:      repo,
		messenger: messenger,
		delay:     delay,
		pending:   make(map[string]*time.Timer),
		lastShown: make(map[string]int),
	}
}

// Schedule arms a delayed refresh for the giveaway's announcement unless
// one is already pending.
func (r *refresher) Schedule(g *domain.Giveaway) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	if _, ok := r.pending[g.MessageID]; ok {
		return
	}

	channelID, messageID := g.ChannelID, g.MessageID
	r.wg.Add(1)
	r.pending[messageID] = time.AfterFunc(r.delay, func() {
		defer r.wg.Done()
		r.flush(channelID, messageID)
	})
}

// flush re-reads the authoritative count and edits the announcement. The
// edit is skipped when the count has not changed since the last refresh.
func (r *refresher) flush(channelID, messageID string) {
	r.mu.Lock()
	delete(r.pending, messageID)
	r.mu.Unlock()

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	count, err := r.repo.CountEntries(ctx, messageID)
	if err != nil {
		log.Warn(LogMsgRefreshCountFailed, "error", err, "message_id", messageID)
		return
	}

	r.mu.Lock()
	unchanged := r.lastShown[messageID] == count
	if !unchanged {
		r.lastShown[messageID] = count
	}
	r.mu.Unlock()
	if unchanged {
		return
	}

	if err := r.messenger.UpdateEntryCount(ctx, channelID, messageID, count); err != nil {
		log.Warn(LogMsgRefreshCountFailed, "error", err, "message_id", messageID)
	}
}

// Forget cancels any pending refresh for the message and drops its cached
// count. Called on finalization so the maps do not accumulate an entry per
// giveaway for the life of the process.
func (r *refresher) Forget(messageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.pending[messageID]; ok {
		if t.Stop() {
			r.wg.Done()
		}
		delete(r.pending, messageID)
	}
	delete(r.lastShown, messageID)
}

// Stop cancels pending timers and waits for in-flight refreshes. Timers
// that already fired run to completion; cancelled ones release their
// waitgroup slot here.
func (r *refresher) Stop() {
	r.mu.Lock()
	r.stopped = true
	for id, t := range r.pending {
		if t.Stop() {
			r.wg.Done()
		}
		delete(r.pending, id)
	}
	r.mu.Unlock()

	r.wg.Wait()
}
