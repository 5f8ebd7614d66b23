// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "FAQBOT_PORT"
	EnvLogLevel        = "FAQBOT_LOG_LEVEL"
	EnvShutdownTimeout = "FAQBOT_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir    = "FAQBOT_DATA_DIR"
	EnvSessionTTL = "FAQBOT_SESSION_TTL"

	// Dialogue tuning
	EnvConfidenceThreshold  = "FAQBOT_CONFIDENCE_THRESHOLD"
	EnvDisambiguationMargin = "FAQBOT_DISAMBIGUATION_MARGIN"
	EnvMaxClarifyOptions    = "FAQBOT_MAX_CLARIFY_OPTIONS"
	EnvMinWordsForNoDomain  = "FAQBOT_MIN_WORDS_FOR_NO_DOMAIN"
	EnvMaxInputLength       = "FAQBOT_MAX_INPUT_LENGTH"
	EnvDomainKeywords       = "FAQBOT_DOMAIN_KEYWORDS"
	EnvOOSKeywords          = "FAQBOT_OOS_KEYWORDS"

	// NLU providers
	EnvNLUProviders      = "FAQBOT_NLU_PROVIDERS"
	EnvNLUTimeout        = "FAQBOT_NLU_TIMEOUT"
	EnvGeminiAPIKey      = "FAQBOT_GEMINI_API_KEY"
	EnvGroqAPIKey        = "FAQBOT_GROQ_API_KEY"
	EnvCerebrasAPIKey    = "FAQBOT_CEREBRAS_API_KEY"
	EnvGeminiIntentModel = "FAQBOT_GEMINI_INTENT_MODEL"
	EnvGroqIntentModel   = "FAQBOT_GROQ_INTENT_MODEL"

	// Rate Limits
	EnvSessionRateBurst  = "FAQBOT_SESSION_RATE_BURST"
	EnvSessionRateRefill = "FAQBOT_SESSION_RATE_REFILL"

	// Sentry Feature
	EnvSentryEnabled     = "FAQBOT_SENTRY_ENABLED"
	EnvSentryToken       = "FAQBOT_SENTRY_TOKEN"
	EnvSentryHost        = "FAQBOT_SENTRY_HOST"
	EnvSentryEnvironment = "FAQBOT_SENTRY_ENVIRONMENT"

	// Better Stack Feature
	EnvBetterStackToken    = "FAQBOT_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "FAQBOT_BETTERSTACK_ENDPOINT"

	// Metrics Auth Feature
	EnvMetricsUsername = "FAQBOT_METRICS_USERNAME"
	EnvMetricsPassword = "FAQBOT_METRICS_PASSWORD"
)
