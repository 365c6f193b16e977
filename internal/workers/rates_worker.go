package workers

import (
	"context"
	"time"

	"wantly_backend/internal/currency"
	"wantly_backend/internal/logger"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 30 * time.Second

// RatesWorker keeps the cached exchange rate snapshot warm so matching
// passes rarely have to fetch the feed inline.
type RatesWorker struct {
	cron  *cron.Cron
	cache *currency.RateCache
	spec  string
}

func NewRatesWorker(cache *currency.RateCache) *RatesWorker {
	return &RatesWorker{
		cron:  cron.New(),
		cache: cache,
		spec:  "@hourly",
	}
}

// Start registers the refresh job and runs one refresh immediately so the
// snapshot is available without waiting for the first tick.
func (w *RatesWorker) Start() error {
	if _, err := w.cron.AddFunc(w.spec, w.refresh); err != nil {
		return err
	}
	w.cron.Start()
	logger.Info("Rates worker started", "spec", w.spec)

	go w.refresh()
	return nil
}

func (w *RatesWorker) Stop() {
	w.cron.Stop()
	logger.Info("Rates worker stopped")
}

func (w *RatesWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	snapshot, err := w.cache.Refresh(ctx)
	logger.WorkerLog("rates", "refresh", err)
	if err != nil {
		return
	}
	logger.Info("Exchange rates refreshed", "currencies", len(snapshot.Rates))
}
