package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvDataDir, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "10000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "10000")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.Dialog.ConfidenceThreshold != 0.5 {
		t.Errorf("ConfidenceThreshold = %v, want 0.5", cfg.Dialog.ConfidenceThreshold)
	}
	if cfg.Dialog.DisambiguationMargin != 0.15 {
		t.Errorf("DisambiguationMargin = %v, want 0.15", cfg.Dialog.DisambiguationMargin)
	}
	if cfg.Dialog.MaxClarifyOptions != 3 {
		t.Errorf("MaxClarifyOptions = %d, want 3", cfg.Dialog.MaxClarifyOptions)
	}
	if cfg.Dialog.MinWordsForNoDomain != 4 {
		t.Errorf("MinWordsForNoDomain = %d, want 4", cfg.Dialog.MinWordsForNoDomain)
	}
	if cfg.Dialog.MaxInputLength != 500 {
		t.Errorf("MaxInputLength = %d, want 500", cfg.Dialog.MaxInputLength)
	}
	if len(cfg.NLUProviders) != 1 || cfg.NLUProviders[0] != "keyword" {
		t.Errorf("NLUProviders = %v, want [keyword]", cfg.NLUProviders)
	}
}

func TestLoad_DefaultKeywordSets(t *testing.T) {
	t.Setenv(EnvDataDir, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	hasKeyword := func(set []string, kw string) bool {
		for _, s := range set {
			if s == kw {
				return true
			}
		}
		return false
	}

	if !hasKeyword(cfg.Dialog.DomainKeywords, "kampus") {
		t.Error("default domain keywords missing 'kampus'")
	}
	if !hasKeyword(cfg.Dialog.DomainKeywords, "spp") {
		t.Error("default domain keywords missing 'spp'")
	}
	if !hasKeyword(cfg.Dialog.OOSKeywords, "cuaca") {
		t.Error("default OOS keywords missing 'cuaca'")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDataDir, t.TempDir())
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvConfidenceThreshold, "0.7")
	t.Setenv(EnvDisambiguationMargin, "0.2")
	t.Setenv(EnvMinWordsForNoDomain, "5")
	t.Setenv(EnvDomainKeywords, "teknik, kampus ,spp")
	t.Setenv(EnvNLUProviders, "gemini,groq,keyword")
	t.Setenv(EnvGeminiAPIKey, "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Dialog.ConfidenceThreshold != 0.7 {
		t.Errorf("ConfidenceThreshold = %v, want 0.7", cfg.Dialog.ConfidenceThreshold)
	}
	if cfg.Dialog.DisambiguationMargin != 0.2 {
		t.Errorf("DisambiguationMargin = %v, want 0.2", cfg.Dialog.DisambiguationMargin)
	}
	if cfg.Dialog.MinWordsForNoDomain != 5 {
		t.Errorf("MinWordsForNoDomain = %d, want 5", cfg.Dialog.MinWordsForNoDomain)
	}
	if len(cfg.Dialog.DomainKeywords) != 3 || cfg.Dialog.DomainKeywords[1] != "kampus" {
		t.Errorf("DomainKeywords = %v, want trimmed 3-element set", cfg.Dialog.DomainKeywords)
	}
	if len(cfg.NLUProviders) != 3 {
		t.Errorf("NLUProviders = %v, want 3 providers", cfg.NLUProviders)
	}
	if !cfg.HasLLMProvider() {
		t.Error("HasLLMProvider() = false with Gemini key set")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Port = "" },
			wantSub: EnvPort,
		},
		{
			name:    "missing data dir",
			mutate:  func(c *Config) { c.DataDir = "" },
			wantSub: EnvDataDir,
		},
		{
			name:    "threshold out of range",
			mutate:  func(c *Config) { c.Dialog.ConfidenceThreshold = 1.5 },
			wantSub: EnvConfidenceThreshold,
		},
		{
			name:    "negative margin",
			mutate:  func(c *Config) { c.Dialog.DisambiguationMargin = -0.1 },
			wantSub: EnvDisambiguationMargin,
		},
		{
			name:    "too few clarify options",
			mutate:  func(c *Config) { c.Dialog.MaxClarifyOptions = 1 },
			wantSub: EnvMaxClarifyOptions,
		},
		{
			name:    "empty domain keywords",
			mutate:  func(c *Config) { c.Dialog.DomainKeywords = nil },
			wantSub: EnvDomainKeywords,
		},
		{
			name:    "sentry enabled without token",
			mutate:  func(c *Config) { c.SentryEnabled = true },
			wantSub: EnvSentryToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantSub)
			}
		})
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	cfg.Dialog.ConfidenceThreshold = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), EnvPort) || !strings.Contains(err.Error(), EnvConfidenceThreshold) {
		t.Errorf("Validate() should join both errors, got: %v", err)
	}
}

func TestSQLitePath(t *testing.T) {
	cfg := validConfig()
	cfg.DataDir = "/tmp/faqbot"

	got := cfg.SQLitePath()
	if got != "/tmp/faqbot/sessions.db" {
		t.Errorf("SQLitePath() = %q, want %q", got, "/tmp/faqbot/sessions.db")
	}
}

func validConfig() *Config {
	return &Config{
		Port:              "10000",
		LogLevel:          "info",
		ShutdownTimeout:   30 * time.Second,
		DataDir:           "/data",
		SessionTTL:        24 * time.Hour,
		NLUProviders:      []string{"keyword"},
		NLUTimeout:        NLUClassify,
		SessionRateBurst:  10,
		SessionRateRefill: 0.5,
		Dialog: DialogConfig{
			ConfidenceThreshold:  0.5,
			DisambiguationMargin: 0.15,
			MaxClarifyOptions:    3,
			MinWordsForNoDomain:  4,
			MaxInputLength:       500,
			DomainKeywords:       []string{"teknik"},
			OOSKeywords:          []string{"cuaca"},
		},
	}
}
