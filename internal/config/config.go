// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, dialogue tuning, NLU providers, and session storage.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir    string        // Data directory for the SQLite session database
	SessionTTL time.Duration // Idle sessions older than this are purged (default: 24h)

	// NLU Provider Configuration
	NLUProviders      []string      // Ordered provider chain, e.g. ["gemini", "groq", "keyword"]
	NLUTimeout        time.Duration // Per-provider classification timeout
	GeminiAPIKey      string        // Gemini API key
	GroqAPIKey        string        // Groq API key (OpenAI-compatible endpoint)
	CerebrasAPIKey    string        // Cerebras API key (OpenAI-compatible endpoint)
	GeminiIntentModel string        // Override for the Gemini intent model
	GroqIntentModel   string        // Override for the Groq intent model

	// Rate Limits (Token Bucket Algorithm)
	SessionRateBurst  float64 // Maximum burst tokens per session (default: 10)
	SessionRateRefill float64 // Tokens refilled per second (default: 0.5)

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)

	// Crash Reporting
	SentryEnabled     bool
	SentryToken       string
	SentryHost        string
	SentryEnvironment string

	// Log Shipping
	BetterStackToken    string
	BetterStackEndpoint string

	// Dialogue Configuration (embedded)
	Dialog DialogConfig
}

// DialogConfig holds the dialogue manager tuning knobs.
type DialogConfig struct {
	// ConfidenceThreshold is the minimum NLU score for direct intent dispatch.
	ConfidenceThreshold float64
	// DisambiguationMargin bounds how close runner-up scores must be to the
	// top score to be offered as clarification options.
	DisambiguationMargin float64
	// MaxClarifyOptions caps the numbered clarification menu size.
	MaxClarifyOptions int
	// MinWordsForNoDomain is the minimum word count before an input with no
	// domain keyword is treated as out of scope.
	MinWordsForNoDomain int
	// MaxInputLength is the maximum accepted message length in runes.
	MaxInputLength int
	// DomainKeywords mark an input as in scope when present.
	DomainKeywords []string
	// OOSKeywords mark an input as out of scope regardless of domain keywords.
	OOSKeywords []string
}

// Default keyword sets for the scope filter. Comma-separated env overrides
// replace the whole set.
var (
	defaultDomainKeywords = []string{
		"fakultas", "teknik", "unanda", "andi djemma", "informatika", "if", "ti",
		"sipil", "ts", "tambang", "pertambangan", "prodi", "jurusan",
		"lab", "laboratorium", "praktikum", "jadwal", "kuliah", "kelas", "dosen",
		"matkul", "mata kuliah", "spp", "ukt", "biaya", "harga", "tarif",
		"krs", "sevima", "siakad", "pmb", "daftar", "pendaftaran", "mahasiswa", "maba",
		"kampus", "akademik", "semester", "ujian", "skripsi", "gedung", "kontak",
		"tu", "tata usaha", "bayar", "pembayaran", "alur", "syarat", "prosedur",
		"fasilitas", "website", "link", "kurikulum", "silabus", "kaprodi", "dekan",
	}
	defaultOOSKeywords = []string{
		"cuaca", "resep", "masak", "film", "bioskop", "politik", "bola", "sepakbola",
		"musik", "lagu", "liburan", "jalan-jalan", "traveling", "saham", "investasi",
		"gempa", "berita", "koran", "covid", "corona", "rekomendasi", "resto", "cafe",
		"tempat makan", "peta", "lokasi", "arah", "jalan ke", "presiden", "gubernur",
		"pemilu", "artis", "gosip", "selebriti", "main", "game", "nonton", "anime",
		"ramalan", "horoskop", "mimpi", "agama", "cerpen", "puisi", "novel", "olahraga",
	}
)

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		// Server Configuration
		Port:            getEnv(EnvPort, "10000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 30*time.Second),

		// Data Configuration
		DataDir:    getEnv(EnvDataDir, getDefaultDataDir()),
		SessionTTL: getDurationEnv(EnvSessionTTL, 24*time.Hour),

		// NLU Provider Configuration
		NLUProviders:      getSliceEnv(EnvNLUProviders, []string{"keyword"}),
		NLUTimeout:        getDurationEnv(EnvNLUTimeout, NLUClassify),
		GeminiAPIKey:      getEnv(EnvGeminiAPIKey, ""),
		GroqAPIKey:        getEnv(EnvGroqAPIKey, ""),
		CerebrasAPIKey:    getEnv(EnvCerebrasAPIKey, ""),
		GeminiIntentModel: getEnv(EnvGeminiIntentModel, ""),
		GroqIntentModel:   getEnv(EnvGroqIntentModel, ""),

		// Rate Limits
		SessionRateBurst:  getFloatEnv(EnvSessionRateBurst, 10.0),
		SessionRateRefill: getFloatEnv(EnvSessionRateRefill, 0.5),

		// Metrics Authentication
		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),

		// Crash Reporting
		SentryEnabled:     getBoolEnv(EnvSentryEnabled, false),
		SentryToken:       getEnv(EnvSentryToken, ""),
		SentryHost:        getEnv(EnvSentryHost, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),

		// Log Shipping
		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		// Dialogue Configuration
		Dialog: DialogConfig{
			ConfidenceThreshold:  getFloatEnv(EnvConfidenceThreshold, 0.5),
			DisambiguationMargin: getFloatEnv(EnvDisambiguationMargin, 0.15),
			MaxClarifyOptions:    getIntEnv(EnvMaxClarifyOptions, 3),
			MinWordsForNoDomain:  getIntEnv(EnvMinWordsForNoDomain, 4),
			MaxInputLength:       getIntEnv(EnvMaxInputLength, 500),
			DomainKeywords:       getSliceEnv(EnvDomainKeywords, defaultDomainKeywords),
			OOSKeywords:          getSliceEnv(EnvOOSKeywords, defaultOOSKeywords),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSessionTTL, c.SessionTTL))
	}
	if c.NLUTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvNLUTimeout, c.NLUTimeout))
	}
	if len(c.NLUProviders) == 0 {
		errs = append(errs, errors.New(EnvNLUProviders+" must name at least one provider"))
	}
	if c.SessionRateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSessionRateBurst, c.SessionRateBurst))
	}
	if c.SessionRateRefill <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSessionRateRefill, c.SessionRateRefill))
	}
	if c.SentryEnabled && (c.SentryToken == "" || c.SentryHost == "") {
		errs = append(errs, errors.New(EnvSentryToken+" and "+EnvSentryHost+" are required when Sentry is enabled"))
	}
	if err := c.Dialog.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("dialog config: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks the dialogue tuning values.
func (c *DialogConfig) Validate() error {
	var errs []error

	if c.ConfidenceThreshold <= 0 || c.ConfidenceThreshold > 1 {
		errs = append(errs, fmt.Errorf("%s must be in (0, 1], got %v", EnvConfidenceThreshold, c.ConfidenceThreshold))
	}
	if c.DisambiguationMargin < 0 || c.DisambiguationMargin > 1 {
		errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", EnvDisambiguationMargin, c.DisambiguationMargin))
	}
	if c.MaxClarifyOptions < 2 {
		errs = append(errs, fmt.Errorf("%s must be at least 2, got %d", EnvMaxClarifyOptions, c.MaxClarifyOptions))
	}
	if c.MinWordsForNoDomain < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvMinWordsForNoDomain, c.MinWordsForNoDomain))
	}
	if c.MaxInputLength < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvMaxInputLength, c.MaxInputLength))
	}
	if len(c.DomainKeywords) == 0 {
		errs = append(errs, errors.New(EnvDomainKeywords+" must not be empty"))
	}
	if len(c.OOSKeywords) == 0 {
		errs = append(errs, errors.New(EnvOOSKeywords+" must not be empty"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getSliceEnv retrieves a comma-separated environment variable with fallback.
// Entries are trimmed and empty entries dropped.
func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}

// SQLitePath returns the full path to the SQLite session database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "sessions.db")
}

// HasLLMProvider returns true if at least one LLM provider is configured.
func (c *Config) HasLLMProvider() bool {
	return c.GeminiAPIKey != "" || c.GroqAPIKey != "" || c.CerebrasAPIKey != ""
}
