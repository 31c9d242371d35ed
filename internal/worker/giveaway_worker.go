package worker

import (
	"context"
	"fmt"

	"github.com/atreus-labs/wardenbot/internal/giveaway"
	"github.com/atreus-labs/wardenbot/internal/logger"
)

// GiveawayWorker is the periodic due-check job. Each tick lists giveaways
// whose end time has passed and finalizes them sequentially. One bad tick
// must never stop the loop: the pool logs the returned error and the next
// tick runs on schedule, and a panic inside finalization is recovered here
// for the same reason.
type GiveawayWorker struct {
	svc giveaway.Service
}

// NewGiveawayWorker creates a new GiveawayWorker
func NewGiveawayWorker(svc giveaway.Service) *GiveawayWorker {
	return &GiveawayWorker{svc: svc}
}

// Process implements [Job]
func (w *GiveawayWorker) Process(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgGiveawayCheckRecovered, "panic", r)
			err = fmt.Errorf("%s: %v", LogMsgGiveawayCheckRecovered, r)
		}
	}()

	if err := w.svc.FinalizeDue(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgGiveawayCheckFailed, err)
	}
	return nil
}
