package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testScopeFilter() *ScopeFilter {
	domain := []string{"fakultas", "teknik", "kampus", "spp", "biaya", "prodi", "lab", "ti"}
	oos := []string{"cuaca", "resep", "bola", "film", "politik"}
	return NewScopeFilter(domain, oos, 4)
}

func TestScopeFilter_Check(t *testing.T) {
	f := testScopeFilter()

	tests := []struct {
		name       string
		text       string
		wantOOS    bool
		wantReason ScopeReason
	}{
		{
			name:       "explicit keyword",
			text:       "bagaimana ramalan cuaca hari ini",
			wantOOS:    true,
			wantReason: ReasonExplicit,
		},
		{
			name:       "explicit wins over domain keyword",
			text:       "bagaimana cuaca di kampus",
			wantOOS:    true,
			wantReason: ReasonExplicit,
		},
		{
			name:       "domain keyword present",
			text:       "berapa biaya spp semester ini",
			wantOOS:    false,
			wantReason: ReasonDomainKeyword,
		},
		{
			name:       "long input without domain keyword",
			text:       "tolong ceritakan sesuatu yang menarik dong",
			wantOOS:    true,
			wantReason: ReasonNoDomain,
		},
		{
			name:       "short generic input",
			text:       "halo kak",
			wantOOS:    false,
			wantReason: ReasonShortOrGeneric,
		},
		{
			name:       "three words below no-domain minimum",
			text:       "apa kabar semua",
			wantOOS:    false,
			wantReason: ReasonShortOrGeneric,
		},
		{
			name:       "keyword inside longer word does not match",
			text:       "nanti saya datang pagi sekali kok",
			wantOOS:    true,
			wantReason: ReasonNoDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOOS, gotReason := f.Check(tt.text)
			assert.Equal(t, tt.wantOOS, gotOOS)
			assert.Equal(t, tt.wantReason, gotReason)
		})
	}
}

func TestScopeFilter_CaseInsensitive(t *testing.T) {
	f := testScopeFilter()

	oos, reason := f.Check("Bagaimana CUACA besok?")
	assert.True(t, oos)
	assert.Equal(t, ReasonExplicit, reason)
}
