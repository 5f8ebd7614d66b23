package nlu

import (
	"errors"
	"testing"

	apperrors "github.com/unanda-ft/faqbot/internal/errors"
)

func TestParseClassifyArgs_Alternatives(t *testing.T) {
	intent, confidence, _, scores, err := parseClassifyArgs(map[string]any{
		"intent":     "info_spp_ft",
		"confidence": 0.6,
		"alternatives": []any{
			map[string]any{"intent": "info_biaya_pmb", "confidence": 0.55},
			map[string]any{"intent": "tanya_biaya_praktikum", "confidence": 0.2},
			map[string]any{"intent": "not_a_real_intent", "confidence": 0.9},
			map[string]any{"intent": "info_spp_ft", "confidence": 0.1},
		},
	})
	if err != nil {
		t.Fatalf("parseClassifyArgs() error = %v", err)
	}
	if intent != "info_spp_ft" || confidence != 0.6 {
		t.Errorf("got %q/%v, want info_spp_ft/0.6", intent, confidence)
	}
	if len(scores) != 3 {
		t.Fatalf("scores = %v, want 3 entries", scores)
	}
	if scores["info_biaya_pmb"] != 0.55 || scores["tanya_biaya_praktikum"] != 0.2 {
		t.Errorf("runner-up scores = %v", scores)
	}
	if scores["info_spp_ft"] != 0.6 {
		t.Errorf("primary score overwritten by duplicate alternative: %v", scores)
	}
}

func TestParseClassifyArgs_NoAlternatives(t *testing.T) {
	_, _, person, scores, err := parseClassifyArgs(map[string]any{
		"intent":      "greeting_ft",
		"confidence":  0.95,
		"person_name": "Budi",
	})
	if err != nil {
		t.Fatalf("parseClassifyArgs() error = %v", err)
	}
	if person != "Budi" {
		t.Errorf("person = %q, want Budi", person)
	}
	if len(scores) != 1 || scores["greeting_ft"] != 0.95 {
		t.Errorf("scores = %v, want {greeting_ft: 0.95}", scores)
	}
}

func TestParseClassifyArgs_UnknownIntent(t *testing.T) {
	_, _, _, _, err := parseClassifyArgs(map[string]any{
		"intent":     "order_pizza",
		"confidence": 0.9,
	})
	if !errors.Is(err, apperrors.ErrUnknownIntent) {
		t.Errorf("error = %v, want ErrUnknownIntent", err)
	}
}

func TestParseClassifyArgs_ConfidenceClamped(t *testing.T) {
	_, confidence, _, _, err := parseClassifyArgs(map[string]any{
		"intent":     "kontak_ft",
		"confidence": 1.7,
	})
	if err != nil {
		t.Fatalf("parseClassifyArgs() error = %v", err)
	}
	if confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", confidence)
	}
}
