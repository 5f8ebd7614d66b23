// Package nlu provides natural-language understanding for the FAQ
// assistant: intent classification with multi-provider fallback plus
// rule-based detection of study programs and laboratories.
//
// Architecture:
// - Keyword: local BM25 index over example utterances (always available)
// - Gemini: google.golang.org/genai function calling
// - Groq/Cerebras: github.com/openai/openai-go/v3 (OpenAI-compatible API)
package nlu

import (
	"context"
)

// Provider identifies a classifier backend.
type Provider string

const (
	// ProviderKeyword is the local BM25 classifier.
	ProviderKeyword Provider = "keyword"
	// ProviderGemini is Google's Gemini API.
	ProviderGemini Provider = "gemini"
	// ProviderGroq is Groq's OpenAI-compatible API.
	ProviderGroq Provider = "groq"
	// ProviderCerebras is Cerebras's OpenAI-compatible API.
	ProviderCerebras Provider = "cerebras"
)

// ProviderEndpoint defines the base URL for OpenAI-compatible
// providers. Gemini is not included as it uses its own SDK.
var ProviderEndpoint = map[Provider]string{
	ProviderGroq:     "https://api.groq.com/openai/v1/",
	ProviderCerebras: "https://api.cerebras.ai/v1/",
}

// String returns the string representation of the provider.
func (p Provider) String() string {
	return string(p)
}

// Detection is one rule-matched entity occurrence in the input.
// Offset is the byte position of the first match in the lowercased
// input, used to pick the leading entity when several are present.
type Detection struct {
	Canonical string
	Offset    int
}

// Result is the outcome of classifying one utterance.
type Result struct {
	// Scores holds the confidence of every candidate intent.
	Scores map[string]float64
	// Intent is the highest scoring intent, empty when nothing matched.
	Intent string
	// Score is the confidence of Intent.
	Score float64
	// Persons holds PERSON entity texts in input order.
	Persons []string
	// Prodi and Labs hold canonical entity detections ordered by the
	// position of their first occurrence in the input.
	Prodi []Detection
	Labs  []Detection
	// Provider names the backend that produced the classification.
	Provider Provider
}

// FirstProdi returns the earliest detected study program, or "".
func (r *Result) FirstProdi() string {
	if len(r.Prodi) == 0 {
		return ""
	}
	return r.Prodi[0].Canonical
}

// FirstLab returns the earliest detected laboratory, or "".
func (r *Result) FirstLab() string {
	if len(r.Labs) == 0 {
		return ""
	}
	return r.Labs[0].Canonical
}

// Classifier is implemented by every NLU backend.
type Classifier interface {
	// Classify analyzes the utterance and scores candidate intents.
	Classify(ctx context.Context, text string) (*Result, error)
	// IsEnabled reports whether the backend is properly initialized.
	IsEnabled() bool
	// Provider returns the backend identity for logs and metrics.
	Provider() Provider
	// Close releases any resources held by the backend.
	Close() error
}
