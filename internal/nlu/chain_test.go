package nlu

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/unanda-ft/faqbot/internal/errors"
	"github.com/unanda-ft/faqbot/internal/logger"
)

type fakeClassifier struct {
	provider Provider
	result   *Result
	err      error
	enabled  bool
	calls    int
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (*Result, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeClassifier) IsEnabled() bool    { return f.enabled }
func (f *fakeClassifier) Provider() Provider { return f.provider }
func (f *fakeClassifier) Close() error       { return nil }

func testChainLogger() *logger.Logger {
	return logger.NewWithWriter("error", io.Discard)
}

func TestChain_FirstTierSuccess(t *testing.T) {
	primary := &fakeClassifier{
		provider: ProviderGemini,
		result:   &Result{Intent: "info_spp_ft", Score: 0.9},
		enabled:  true,
	}
	secondary := &fakeClassifier{provider: ProviderKeyword, enabled: true}
	chain := NewChain([]Classifier{primary, secondary}, time.Second, testChainLogger(), nil)

	result, err := chain.Classify(t.Context(), "berapa spp")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Intent != "info_spp_ft" {
		t.Errorf("Intent = %q, want info_spp_ft", result.Intent)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.calls)
	}
}

func TestChain_FallsThroughOnError(t *testing.T) {
	primary := &fakeClassifier{
		provider: ProviderGemini,
		err:      errors.New("rate limited"),
		enabled:  true,
	}
	secondary := &fakeClassifier{
		provider: ProviderKeyword,
		result:   &Result{Intent: "kontak_ft", Score: 0.8},
		enabled:  true,
	}
	chain := NewChain([]Classifier{primary, secondary}, time.Second, testChainLogger(), nil)

	result, err := chain.Classify(t.Context(), "kontak tu")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Intent != "kontak_ft" {
		t.Errorf("Intent = %q, want kontak_ft", result.Intent)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", primary.calls, secondary.calls)
	}
}

func TestChain_PreservesScoreDistribution(t *testing.T) {
	primary := &fakeClassifier{
		provider: ProviderGemini,
		result: &Result{
			Intent: "info_spp_ft",
			Score:  0.6,
			Scores: map[string]float64{
				"info_spp_ft":    0.6,
				"info_biaya_pmb": 0.55,
			},
		},
		enabled: true,
	}
	chain := NewChain([]Classifier{primary}, time.Second, testChainLogger(), nil)

	result, err := chain.Classify(t.Context(), "berapa biaya kuliah")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	// The full distribution must survive the chain so close runner-ups
	// can still trigger a clarification downstream.
	if len(result.Scores) != 2 {
		t.Errorf("Scores = %v, want both candidates", result.Scores)
	}
}

func TestChain_AllTiersFail(t *testing.T) {
	failing := &fakeClassifier{
		provider: ProviderGroq,
		err:      errors.New("boom"),
		enabled:  true,
	}
	chain := NewChain([]Classifier{failing}, time.Second, testChainLogger(), nil)

	_, err := chain.Classify(t.Context(), "halo")
	if !errors.Is(err, apperrors.ErrOracleUnavailable) {
		t.Errorf("error = %v, want ErrOracleUnavailable", err)
	}
}

func TestChain_SkipsDisabledTiers(t *testing.T) {
	disabled := &fakeClassifier{provider: ProviderGemini, enabled: false}
	enabled := &fakeClassifier{
		provider: ProviderKeyword,
		result:   &Result{Intent: "greeting_ft", Score: 0.95},
		enabled:  true,
	}
	chain := NewChain([]Classifier{disabled, enabled}, time.Second, testChainLogger(), nil)

	if chain.Provider() != ProviderKeyword {
		t.Errorf("Provider() = %q, want keyword", chain.Provider())
	}
	if _, err := chain.Classify(t.Context(), "halo"); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if disabled.calls != 0 {
		t.Errorf("disabled tier called %d times, want 0", disabled.calls)
	}
}

func TestChain_Empty(t *testing.T) {
	chain := NewChain(nil, time.Second, testChainLogger(), nil)

	if chain.IsEnabled() {
		t.Error("IsEnabled() = true, want false")
	}
	if _, err := chain.Classify(t.Context(), "halo"); !errors.Is(err, apperrors.ErrOracleUnavailable) {
		t.Errorf("error = %v, want ErrOracleUnavailable", err)
	}
}
