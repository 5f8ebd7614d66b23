package nlu

import (
	"regexp"
	"sort"
	"strings"
)

// TermMatcher detects canonical study programs and laboratories in
// free text using word-boundary matching over the surface-form tables.
// Longer variants are tried first so "teknik informatika" wins over
// the bare "ti".
type TermMatcher struct {
	prodi []termPattern
	labs  []termPattern
}

type termPattern struct {
	canonical string
	re        *regexp.Regexp
}

// NewTermMatcher compiles the variant tables into matchers.
func NewTermMatcher(prodiTerms, labTerms map[string][]string) *TermMatcher {
	return &TermMatcher{
		prodi: compileTerms(prodiTerms),
		labs:  compileTerms(labTerms),
	}
}

func compileTerms(terms map[string][]string) []termPattern {
	type variant struct {
		canonical string
		surface   string
	}
	var variants []variant
	for canonical, surfaces := range terms {
		for _, s := range surfaces {
			variants = append(variants, variant{canonical, strings.ToLower(s)})
		}
	}
	// Longest surface first, then lexicographic for determinism.
	sort.Slice(variants, func(i, j int) bool {
		if len(variants[i].surface) != len(variants[j].surface) {
			return len(variants[i].surface) > len(variants[j].surface)
		}
		return variants[i].surface < variants[j].surface
	})

	patterns := make([]termPattern, 0, len(variants))
	for _, v := range variants {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(v.surface) + `\b`)
		patterns = append(patterns, termPattern{canonical: v.canonical, re: re})
	}
	return patterns
}

// DetectProdi returns study program detections ordered by first
// occurrence, one entry per canonical name.
func (m *TermMatcher) DetectProdi(text string) []Detection {
	return detect(m.prodi, text)
}

// DetectLabs returns laboratory detections ordered by first
// occurrence, one entry per canonical name.
func (m *TermMatcher) DetectLabs(text string) []Detection {
	return detect(m.labs, text)
}

func detect(patterns []termPattern, text string) []Detection {
	text = strings.ToLower(text)
	best := make(map[string]int)
	for _, p := range patterns {
		loc := p.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if offset, seen := best[p.canonical]; !seen || loc[0] < offset {
			best[p.canonical] = loc[0]
		}
	}
	if len(best) == 0 {
		return nil
	}
	detections := make([]Detection, 0, len(best))
	for canonical, offset := range best {
		detections = append(detections, Detection{Canonical: canonical, Offset: offset})
	}
	sort.Slice(detections, func(i, j int) bool {
		if detections[i].Offset != detections[j].Offset {
			return detections[i].Offset < detections[j].Offset
		}
		return detections[i].Canonical < detections[j].Canonical
	})
	return detections
}

// Annotate fills the Prodi and Labs detections of a result in place.
func (m *TermMatcher) Annotate(r *Result, text string) {
	r.Prodi = m.DetectProdi(text)
	r.Labs = m.DetectLabs(text)
}
