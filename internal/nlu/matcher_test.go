package nlu

import (
	"testing"

	"github.com/unanda-ft/faqbot/internal/knowledge"
)

func newTestMatcher() *TermMatcher {
	return NewTermMatcher(knowledge.ProdiTerms, knowledge.LabTerms)
}

func TestDetectProdi_Canonicalization(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		text string
		want string
	}{
		{"berapa spp teknik informatika", "Teknik Informatika"},
		{"info prodi ILKOM dong", "Teknik Informatika"},
		{"jadwal jurusan sipil", "Teknik Sipil"},
		{"mau masuk tambang", "Teknik Pertambangan"},
	}
	for _, tt := range tests {
		got := m.DetectProdi(tt.text)
		if len(got) != 1 || got[0].Canonical != tt.want {
			t.Errorf("DetectProdi(%q) = %v, want [%s]", tt.text, got, tt.want)
		}
	}
}

func TestDetectProdi_NoWordBoundaryLeak(t *testing.T) {
	m := newTestMatcher()

	// "ti" appears inside other words but must not match there.
	if got := m.DetectProdi("nanti saya datang pagi"); len(got) != 0 {
		t.Errorf("DetectProdi leaked substring match: %v", got)
	}
}

func TestDetectProdi_EarliestOccurrenceFirst(t *testing.T) {
	m := newTestMatcher()

	got := m.DetectProdi("bandingkan sipil dengan informatika")
	if len(got) != 2 {
		t.Fatalf("detections = %v, want 2", got)
	}
	if got[0].Canonical != "Teknik Sipil" {
		t.Errorf("first detection = %q, want Teknik Sipil", got[0].Canonical)
	}
	if got[1].Canonical != "Teknik Informatika" {
		t.Errorf("second detection = %q, want Teknik Informatika", got[1].Canonical)
	}
}

func TestDetectLabs(t *testing.T) {
	m := newTestMatcher()

	got := m.DetectLabs("berapa biaya praktikum di labkom?")
	if len(got) != 1 || got[0].Canonical != "Laboratorium Komputer" {
		t.Errorf("DetectLabs = %v, want [Laboratorium Komputer]", got)
	}
}

func TestDetect_DedupesCanonical(t *testing.T) {
	m := newTestMatcher()

	// Two variants of the same canonical program.
	got := m.DetectProdi("prodi informatika alias teknik informatika")
	if len(got) != 1 {
		t.Errorf("detections = %v, want single canonical entry", got)
	}
}
