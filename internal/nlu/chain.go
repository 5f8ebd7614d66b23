package nlu

import (
	"context"
	"time"

	apperrors "github.com/unanda-ft/faqbot/internal/errors"
	"github.com/unanda-ft/faqbot/internal/logger"
	"github.com/unanda-ft/faqbot/internal/metrics"
)

// Chain tries classifiers in configured order and returns the first
// successful result. When every tier fails the caller receives
// ErrOracleUnavailable and answers with the fixed degradation message.
type Chain struct {
	classifiers []Classifier
	timeout     time.Duration
	logger      *logger.Logger
	metrics     *metrics.Metrics
}

// NewChain builds a fallback chain. Disabled (nil) classifiers are
// skipped; at least one enabled classifier is required in practice
// because the keyword tier never fails to construct.
func NewChain(classifiers []Classifier, timeout time.Duration, log *logger.Logger, m *metrics.Metrics) *Chain {
	var enabled []Classifier
	for _, c := range classifiers {
		if c != nil && c.IsEnabled() {
			enabled = append(enabled, c)
		}
	}
	return &Chain{
		classifiers: enabled,
		timeout:     timeout,
		logger:      log,
		metrics:     m,
	}
}

// Classify tries each tier with a per-tier timeout.
func (ch *Chain) Classify(ctx context.Context, text string) (*Result, error) {
	if ch == nil || len(ch.classifiers) == 0 {
		return nil, apperrors.NewOracleError("none", apperrors.ErrOracleUnavailable)
	}

	var lastErr error
	for _, classifier := range ch.classifiers {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		provider := classifier.Provider()
		tierCtx, cancel := context.WithTimeout(ctx, ch.timeout)
		start := time.Now()
		result, err := classifier.Classify(tierCtx, text)
		elapsed := time.Since(start)
		cancel()

		if err == nil {
			ch.record(provider, "success", elapsed)
			return result, nil
		}

		lastErr = err
		ch.record(provider, "error", elapsed)
		ch.logger.WithModule("nlu").
			WithError(err).
			WithField("provider", provider.String()).
			Warn("classifier tier failed, trying next")
	}

	ch.logger.WithModule("nlu").WithError(lastErr).Error("all classifier tiers failed")
	return nil, apperrors.NewOracleError("all", apperrors.ErrOracleUnavailable)
}

func (ch *Chain) record(provider Provider, status string, elapsed time.Duration) {
	if ch.metrics == nil {
		return
	}
	ch.metrics.RecordNLURequest(provider.String(), status, elapsed.Seconds())
}

// IsEnabled reports whether any tier is available.
func (ch *Chain) IsEnabled() bool {
	return ch != nil && len(ch.classifiers) > 0
}

// Provider returns the identity of the primary tier.
func (ch *Chain) Provider() Provider {
	if ch == nil || len(ch.classifiers) == 0 {
		return ""
	}
	return ch.classifiers[0].Provider()
}

// Close closes every tier.
func (ch *Chain) Close() error {
	var firstErr error
	for _, c := range ch.classifiers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
