package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Turn metrics
	TurnsTotal          *prometheus.CounterVec
	TurnDurationSeconds prometheus.Histogram

	// Scope filter metrics
	ScopeDecisionsTotal *prometheus.CounterVec

	// Clarification metrics
	ClarificationsOffered  prometheus.Counter
	ClarificationsResolved *prometheus.CounterVec

	// NLU metrics
	NLURequestsTotal   *prometheus.CounterVec
	NLUDurationSeconds *prometheus.HistogramVec

	// Name acquisition metrics
	NameCapturesTotal *prometheus.CounterVec

	// Slot filling metrics
	SlotPromptsTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec
	RateLimiterActive  prometheus.Gauge

	// Session store metrics
	SessionsActive prometheus.Gauge
	SessionsPurged prometheus.Counter
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Turn metrics
		TurnsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "faqbot_turns_total",
				Help: "Total number of dialogue turns by response category",
			},
			[]string{"category"}, // category: intent handled, prompt, fallback, out_of_scope, ...
		),

		TurnDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "faqbot_turn_duration_seconds",
				Help:    "Dialogue turn processing duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
		),

		// Scope filter metrics
		ScopeDecisionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "faqbot_scope_decisions_total",
				Help: "Total scope filter decisions by reason",
			},
			[]string{"reason"}, // reason: explicit, potential_no_domain, in_scope_*
		),

		// Clarification metrics
		ClarificationsOffered: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "faqbot_clarifications_offered_total",
				Help: "Total clarification menus offered to users",
			},
		),

		ClarificationsResolved: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "faqbot_clarifications_resolved_total",
				Help: "Total clarification outcomes by result",
			},
			[]string{"result"}, // result: resolved, reprompted
		),

		// NLU metrics
		NLURequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "faqbot_nlu_requests_total",
				Help: "Total NLU classification requests by provider and status",
			},
			[]string{"provider", "status"}, // status: success, error, timeout
		),

		NLUDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "faqbot_nlu_duration_seconds",
				Help:    "NLU classification duration in seconds by provider",
				Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"provider"}, // provider: keyword, gemini, groq, cerebras
		),

		// Name acquisition metrics
		NameCapturesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "faqbot_name_captures_total",
				Help: "Total user names captured by detection method",
			},
			[]string{"method"}, // method: ner, pattern, short_input
		),

		// Slot filling metrics
		SlotPromptsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "faqbot_slot_prompts_total",
				Help: "Total prompts for missing mandatory slots by slot type",
			},
			[]string{"slot"}, // slot: prodi, lab
		),

		// HTTP metrics
		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "faqbot_http_errors_total",
				Help: "Total HTTP errors by type and endpoint",
			},
			[]string{"error_type", "endpoint"}, // error_type: bad_request, rate_limit, internal, ...
		),

		// Rate limiter metrics
		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "faqbot_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"}, // limiter_type: session, global
		),

		RateLimiterActive: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "faqbot_rate_limiter_active_buckets",
				Help: "Number of per-session token buckets currently tracked",
			},
		),

		// Session store metrics
		SessionsActive: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "faqbot_sessions_active",
				Help: "Number of sessions currently stored",
			},
		),

		SessionsPurged: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "faqbot_sessions_purged_total",
				Help: "Total stale sessions removed by the janitor",
			},
		),
	}

	return m
}

// RecordTurn records a completed dialogue turn with its response category
func (m *Metrics) RecordTurn(category string, duration float64) {
	m.TurnsTotal.WithLabelValues(category).Inc()
	m.TurnDurationSeconds.Observe(duration)
}

// RecordScopeDecision records a scope filter decision
func (m *Metrics) RecordScopeDecision(reason string) {
	m.ScopeDecisionsTotal.WithLabelValues(reason).Inc()
}

// RecordClarificationOffered records a clarification menu shown to a user
func (m *Metrics) RecordClarificationOffered() {
	m.ClarificationsOffered.Inc()
}

// RecordClarificationResolved records a clarification outcome
func (m *Metrics) RecordClarificationResolved(result string) {
	m.ClarificationsResolved.WithLabelValues(result).Inc()
}

// RecordNLURequest records an NLU classification request
func (m *Metrics) RecordNLURequest(provider, status string, duration float64) {
	m.NLURequestsTotal.WithLabelValues(provider, status).Inc()
	m.NLUDurationSeconds.WithLabelValues(provider).Observe(duration)
}

// RecordNameCapture records a captured user name by method
func (m *Metrics) RecordNameCapture(method string) {
	m.NameCapturesTotal.WithLabelValues(method).Inc()
}

// RecordSlotPrompt records a prompt for a missing mandatory slot
func (m *Metrics) RecordSlotPrompt(slot string) {
	m.SlotPromptsTotal.WithLabelValues(slot).Inc()
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, endpoint string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// SetRateLimiterActive sets the current per-key bucket count
func (m *Metrics) SetRateLimiterActive(n int) {
	m.RateLimiterActive.Set(float64(n))
}

// SetSessionsActive sets the current stored session count
func (m *Metrics) SetSessionsActive(n int) {
	m.SessionsActive.Set(float64(n))
}

// RecordSessionsPurged adds to the purged session counter
func (m *Metrics) RecordSessionsPurged(n int) {
	m.SessionsPurged.Add(float64(n))
}
