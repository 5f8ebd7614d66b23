package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unanda-ft/faqbot/internal/nlu"
	"github.com/unanda-ft/faqbot/internal/session"
)

var testDescriptions = map[string]string{
	"info_spp_ft":           "Informasi biaya SPP (kuliah per semester)",
	"info_biaya_pmb":        "Informasi biaya awal terkait pendaftaran mahasiswa baru (PMB)",
	"tanya_biaya_praktikum": "Informasi biaya praktikum di laboratorium",
	"jadwal_kuliah_ft":      "Informasi jadwal kuliah",
}

func TestAmbiguityResolver_ClearWinnerSkipsClarification(t *testing.T) {
	r := NewAmbiguityResolver(0.5, 0.15, 3, testDescriptions)

	options := r.Resolve(&nlu.Result{
		Intent: "info_spp_ft",
		Score:  0.9,
		Scores: map[string]float64{"info_spp_ft": 0.9, "info_biaya_pmb": 0.6},
	})
	assert.Nil(t, options)
}

func TestAmbiguityResolver_RunnerUpBelowThreshold(t *testing.T) {
	r := NewAmbiguityResolver(0.5, 0.15, 3, testDescriptions)

	options := r.Resolve(&nlu.Result{
		Intent: "info_spp_ft",
		Score:  0.6,
		Scores: map[string]float64{"info_spp_ft": 0.6, "info_biaya_pmb": 0.4},
	})
	assert.Nil(t, options)
}

func TestAmbiguityResolver_CandidatesWithinMargin(t *testing.T) {
	r := NewAmbiguityResolver(0.5, 0.15, 3, testDescriptions)

	options := r.Resolve(&nlu.Result{
		Intent: "info_spp_ft",
		Score:  0.6,
		Scores: map[string]float64{
			"info_spp_ft":           0.6,
			"info_biaya_pmb":        0.55,
			"tanya_biaya_praktikum": 0.2,
		},
	})
	require.Len(t, options, 2)
	assert.Equal(t, "info_spp_ft", options[0].Intent)
	assert.Equal(t, "info_biaya_pmb", options[1].Intent)
}

func TestAmbiguityResolver_FiltersIntentsWithoutDescription(t *testing.T) {
	r := NewAmbiguityResolver(0.5, 0.15, 3, testDescriptions)

	options := r.Resolve(&nlu.Result{
		Intent: "info_spp_ft",
		Score:  0.6,
		Scores: map[string]float64{
			"info_spp_ft": 0.6,
			"greeting_ft": 0.58,
		},
	})
	// greeting_ft has no description, so only one candidate survives and
	// clarification aborts.
	assert.Nil(t, options)
}

func TestAmbiguityResolver_CapsOptionCount(t *testing.T) {
	r := NewAmbiguityResolver(0.4, 0.5, 3, testDescriptions)

	options := r.Resolve(&nlu.Result{
		Intent: "info_spp_ft",
		Score:  0.6,
		Scores: map[string]float64{
			"info_spp_ft":           0.6,
			"info_biaya_pmb":        0.55,
			"tanya_biaya_praktikum": 0.5,
			"jadwal_kuliah_ft":      0.45,
		},
	})
	require.Len(t, options, 3)
	assert.Equal(t, "info_spp_ft", options[0].Intent)
	assert.Equal(t, "info_biaya_pmb", options[1].Intent)
	assert.Equal(t, "tanya_biaya_praktikum", options[2].Intent)
}

func TestAmbiguityResolver_EmptyResult(t *testing.T) {
	r := NewAmbiguityResolver(0.5, 0.15, 3, testDescriptions)

	assert.Nil(t, r.Resolve(nil))
	assert.Nil(t, r.Resolve(&nlu.Result{}))
}

func TestClarificationPrompt(t *testing.T) {
	prompt := ClarificationPrompt([]session.ClarifyOption{
		{Intent: "info_spp_ft", Description: "Informasi biaya SPP (kuliah per semester)"},
		{Intent: "info_biaya_pmb", Description: "Informasi biaya awal terkait pendaftaran mahasiswa baru (PMB)"},
	})
	assert.Contains(t, prompt, "Hmm, saya perlu sedikit klarifikasi. Apakah yang Anda maksud:")
	assert.Contains(t, prompt, "1. Informasi biaya SPP (kuliah per semester)?")
	assert.Contains(t, prompt, "2. Informasi biaya awal terkait pendaftaran mahasiswa baru (PMB)?")
}

func TestResolveChoice(t *testing.T) {
	options := []session.ClarifyOption{
		{Intent: "info_spp_ft", Description: "SPP"},
		{Intent: "info_biaya_pmb", Description: "PMB"},
	}

	tests := []struct {
		reply      string
		wantIntent string
		wantOK     bool
	}{
		{"1", "info_spp_ft", true},
		{" 2 ", "info_biaya_pmb", true},
		{"2.", "", false},
		{"02", "", false},
		{"3", "", false},
		{"0", "", false},
		{"spp", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			option, ok := ResolveChoice(tt.reply, options)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantIntent, option.Intent)
			}
		})
	}
}
