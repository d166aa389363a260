package tasks

import (
	"context"
	"time"

	"github.com/taskive/taskive/internal/constants"
	"github.com/taskive/taskive/internal/logger"
)

// Watcher drives the periodic deadline/health maintenance loop. All work
// happens through Store.CheckDeadlines, so watcher ticks and user actions
// serialize on the same lock and cannot race on pet health.
type Watcher struct {
	store    *Store
	interval time.Duration
}

// NewWatcher creates a watcher with the default cadence.
func NewWatcher(store *Store) *Watcher {
	return &Watcher{
		store:    store,
		interval: constants.WatcherInterval,
	}
}

// Run blocks, ticking until the context is cancelled. One check runs
// immediately so freshly loaded tasks show current labels.
func (w *Watcher) Run(ctx context.Context) {
	logger.Debug("Deadline watcher started", "interval", w.interval)
	w.store.CheckDeadlines()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Deadline watcher stopped")
			return
		case <-ticker.C:
			w.store.CheckDeadlines()
		}
	}
}
