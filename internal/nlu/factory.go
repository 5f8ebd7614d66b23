package nlu

import (
	"context"
	"fmt"

	"github.com/unanda-ft/faqbot/internal/config"
	"github.com/unanda-ft/faqbot/internal/knowledge"
	"github.com/unanda-ft/faqbot/internal/logger"
	"github.com/unanda-ft/faqbot/internal/metrics"
)

// NewFromConfig assembles the classifier chain from configuration.
// Providers are tried in the configured order; the keyword tier is
// always appended as the final fallback so the assistant keeps
// answering when every remote tier is down.
func NewFromConfig(ctx context.Context, cfg *config.Config, kb *knowledge.Base, log *logger.Logger, m *metrics.Metrics) (*Chain, error) {
	matcher := NewTermMatcher(kb.ProdiTerms, kb.LabTerms)

	var classifiers []Classifier
	keywordIncluded := false

	for _, name := range cfg.NLUProviders {
		switch Provider(name) {
		case ProviderKeyword:
			kw, err := NewKeywordClassifier(matcher)
			if err != nil {
				return nil, fmt.Errorf("keyword classifier: %w", err)
			}
			classifiers = append(classifiers, kw)
			keywordIncluded = true
		case ProviderGemini:
			gc, err := NewGeminiClassifier(ctx, cfg.GeminiAPIKey, cfg.GeminiIntentModel, matcher)
			if err != nil {
				return nil, fmt.Errorf("gemini classifier: %w", err)
			}
			if gc != nil {
				classifiers = append(classifiers, gc)
			}
		case ProviderGroq:
			oc, err := NewOpenAIClassifier(ProviderGroq, cfg.GroqAPIKey, cfg.GroqIntentModel, matcher)
			if err != nil {
				return nil, fmt.Errorf("groq classifier: %w", err)
			}
			if oc != nil {
				classifiers = append(classifiers, oc)
			}
		case ProviderCerebras:
			oc, err := NewOpenAIClassifier(ProviderCerebras, cfg.CerebrasAPIKey, "", matcher)
			if err != nil {
				return nil, fmt.Errorf("cerebras classifier: %w", err)
			}
			if oc != nil {
				classifiers = append(classifiers, oc)
			}
		default:
			return nil, fmt.Errorf("unknown NLU provider: %s", name)
		}
	}

	if !keywordIncluded {
		kw, err := NewKeywordClassifier(matcher)
		if err != nil {
			return nil, fmt.Errorf("keyword classifier: %w", err)
		}
		classifiers = append(classifiers, kw)
	}

	return NewChain(classifiers, cfg.NLUTimeout, log, m), nil
}
