package session

import (
	"context"
	"time"

	"github.com/unanda-ft/faqbot/internal/logger"
	"github.com/unanda-ft/faqbot/internal/metrics"
)

// Janitor purges idle sessions in the background and keeps the active
// session gauge current.
type Janitor struct {
	store    Store
	ttl      time.Duration
	interval time.Duration
	logger   *logger.Logger
	metrics  *metrics.Metrics
	stop     chan struct{}
	done     chan struct{}
}

// NewJanitor creates a janitor. Call Start to begin sweeping.
func NewJanitor(store Store, ttl, interval time.Duration, log *logger.Logger, m *metrics.Metrics) *Janitor {
	return &Janitor{
		store:    store,
		ttl:      ttl,
		interval: interval,
		logger:   log.WithModule("session"),
		metrics:  m,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (j *Janitor) Start() {
	go j.loop()
}

func (j *Janitor) loop() {
	defer close(j.done)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stop:
			return
		}
	}
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := j.store.PurgeExpired(ctx, j.ttl)
	if err != nil {
		j.logger.WithError(err).Warn("session purge failed")
		return
	}
	if purged > 0 {
		j.logger.WithField("purged", purged).Info("purged idle sessions")
	}

	if j.metrics != nil {
		j.metrics.RecordSessionsPurged(int(purged))
		if count, err := j.store.Count(ctx); err == nil {
			j.metrics.SetSessionsActive(count)
		}
	}
}

// Stop halts the sweep loop and waits for it to exit.
func (j *Janitor) Stop() {
	close(j.stop)
	<-j.done
}
