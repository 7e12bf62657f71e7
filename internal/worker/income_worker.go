package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GrandLineBot_Go/internal/economy"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
	"github.com/osse101/GrandLineBot_Go/internal/metrics"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

// IncomeWorker is the scheduled income tick. Each run enumerates every user
// who owns at least one fruit and accrues their passive berry income. Users
// with no fruits have zero power and zero income, so they are never visited.
//
// One user's failure never aborts the sweep; errors are logged and counted.
type IncomeWorker struct {
	economy economy.Service
	owners  repository.Collection

	// inFlight tracks users currently being accrued. When a slow tick
	// overlaps the next one, the later run skips claimed users instead of
	// queueing a second accrual behind the row lock.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewIncomeWorker creates a new IncomeWorker
func NewIncomeWorker(economySvc economy.Service, owners repository.Collection) *IncomeWorker {
	return &IncomeWorker{
		economy:  economySvc,
		owners:   owners,
		inFlight: make(map[string]struct{}),
	}
}

// claim marks a user as being processed. Returns false if another run
// already holds them.
func (w *IncomeWorker) claim(userID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, held := w.inFlight[userID]; held {
		return false
	}
	w.inFlight[userID] = struct{}{}
	return true
}

func (w *IncomeWorker) release(userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inFlight, userID)
}

// Process implements Job. Accrual is idempotent per user (elapsed time since
// the last accrual), so even a user missed by the skip below is never
// double-paid; the in-flight set just keeps overlapping ticks from piling up
// on the same rows.
func (w *IncomeWorker) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	start := time.Now()
	log.Info(LogMsgIncomeTickStarting)

	ownerIDs, err := w.owners.GetOwnerIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list fruit owners: %w", err)
	}

	var processed, skipped, failed int
	var credited int64
	for _, userID := range ownerIDs {
		if !w.claim(userID) {
			skipped++
			continue
		}

		result, err := w.economy.Accrue(ctx, userID)
		w.release(userID)
		if err != nil {
			failed++
			metrics.IncomeTickErrors.Inc()
			log.Error(LogMsgIncomeAccrualFailed, "userID", userID, "error", err)
			continue
		}
		processed++
		credited += result.Credited
	}

	elapsed := time.Since(start)
	metrics.IncomeTickDuration.Observe(elapsed.Seconds())
	metrics.IncomeTickUsers.Set(float64(processed))

	log.Info(LogMsgIncomeTickCompleted,
		"processed", processed,
		"skipped", skipped,
		"failed", failed,
		"credited", credited,
		"duration", elapsed)
	return nil
}
