package nlu

import (
	"testing"
)

func newTestKeywordClassifier(t *testing.T) *KeywordClassifier {
	t.Helper()
	kw, err := NewKeywordClassifier(newTestMatcher())
	if err != nil {
		t.Fatalf("NewKeywordClassifier() error = %v", err)
	}
	return kw
}

func TestKeywordClassify_TopIntent(t *testing.T) {
	kw := newTestKeywordClassifier(t)

	tests := []struct {
		text string
		want string
	}{
		{"berapa spp teknik informatika", "info_spp_ft"},
		{"cara mengisi krs di sevima", "info_krs_sevima"},
		{"langkah langkah pendaftaran pmb", "cara_daftar_pmb"},
		{"kontak tata usaha fakultas teknik", "kontak_ft"},
	}
	for _, tt := range tests {
		result, err := kw.Classify(t.Context(), tt.text)
		if err != nil {
			t.Fatalf("Classify(%q) error = %v", tt.text, err)
		}
		if result.Intent != tt.want {
			t.Errorf("Classify(%q).Intent = %q (score %.2f), want %q", tt.text, result.Intent, result.Score, tt.want)
		}
		if result.Score <= 0 || result.Score > 1 {
			t.Errorf("Classify(%q).Score = %v, want in (0,1]", tt.text, result.Score)
		}
	}
}

func TestKeywordClassify_NoMatch(t *testing.T) {
	kw := newTestKeywordClassifier(t)

	result, err := kw.Classify(t.Context(), "xyzzy qwerty plugh")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Intent != "" || result.Score != 0 {
		t.Errorf("Intent = %q Score = %v, want empty and 0", result.Intent, result.Score)
	}
	if len(result.Scores) != 0 {
		t.Errorf("Scores = %v, want empty", result.Scores)
	}
}

func TestKeywordClassify_ScoresDescendByRank(t *testing.T) {
	kw := newTestKeywordClassifier(t)

	result, err := kw.Classify(t.Context(), "berapa biaya kuliah di fakultas teknik")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if len(result.Scores) < 2 {
		t.Skipf("only %d candidates, need at least 2", len(result.Scores))
	}
	top := result.Scores[result.Intent]
	for intent, score := range result.Scores {
		if score > top {
			t.Errorf("Scores[%q] = %v exceeds top score %v", intent, score, top)
		}
	}
}

func TestKeywordClassify_AnnotatesEntities(t *testing.T) {
	kw := newTestKeywordClassifier(t)

	result, err := kw.Classify(t.Context(), "berapa spp teknik sipil")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.FirstProdi() != "Teknik Sipil" {
		t.Errorf("FirstProdi = %q, want Teknik Sipil", result.FirstProdi())
	}
}

func TestKeywordClassify_PersonExtraction(t *testing.T) {
	kw := newTestKeywordClassifier(t)

	result, err := kw.Classify(t.Context(), "nama saya budi santoso")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if len(result.Persons) != 1 || result.Persons[0] != "budi santoso" {
		t.Errorf("Persons = %v, want [budi santoso]", result.Persons)
	}
}

func TestRankConfidence(t *testing.T) {
	tests := []struct {
		rank int
		want float64
	}{
		{1, 1.0 / 1.05},
		{5, 0.80},
		{10, 1.0 / 1.5},
	}
	for _, tt := range tests {
		got := rankConfidence(tt.rank)
		if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
			t.Errorf("rankConfidence(%d) = %v, want ~%v", tt.rank, got, tt.want)
		}
	}
	if rankConfidence(0) != 0 {
		t.Error("rankConfidence(0) should be 0")
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Berapa SPP, Teknik-Informatika?")
	want := []string{"berapa", "spp", "teknik", "informatika"}
	if len(got) != len(want) {
		t.Fatalf("tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
