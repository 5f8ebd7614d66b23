package dialog

import (
	"regexp"
	"strings"
)

// ScopeReason explains why an input was classified as inside or outside
// the faculty domain.
type ScopeReason string

const (
	// ReasonExplicit means an explicit off-topic keyword matched.
	ReasonExplicit ScopeReason = "explicit"
	// ReasonNoDomain means a long enough input contained no domain keyword.
	ReasonNoDomain ScopeReason = "potential_no_domain"
	// ReasonDomainKeyword means a domain keyword anchored the input in scope.
	ReasonDomainKeyword ScopeReason = "in_scope_domain_keyword_present"
	// ReasonShortOrGeneric means the input was too short or generic to judge.
	ReasonShortOrGeneric ScopeReason = "in_scope_short_or_generic"
)

// ScopeFilter decides whether an input concerns the faculty domain before
// any intent model runs. Keyword matches are whole-word so that short
// abbreviations such as "ti" do not fire inside unrelated words.
type ScopeFilter struct {
	minWordsForNoDomain int

	oosExprs    []*regexp.Regexp
	domainExprs []*regexp.Regexp
}

// NewScopeFilter compiles the keyword lists into word-boundary matchers.
func NewScopeFilter(domainKeywords, oosKeywords []string, minWordsForNoDomain int) *ScopeFilter {
	return &ScopeFilter{
		minWordsForNoDomain: minWordsForNoDomain,
		oosExprs:            compileKeywordExprs(oosKeywords),
		domainExprs:         compileKeywordExprs(domainKeywords),
	}
}

func compileKeywordExprs(keywords []string) []*regexp.Regexp {
	exprs := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		exprs = append(exprs, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return exprs
}

// Check classifies the input. The explicit off-topic list wins over domain
// keywords so that mixed inputs like "cuaca di kampus" stay rejected.
func (f *ScopeFilter) Check(text string) (bool, ScopeReason) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	for _, re := range f.oosExprs {
		if re.MatchString(lowered) {
			return true, ReasonExplicit
		}
	}

	domainPresent := false
	for _, re := range f.domainExprs {
		if re.MatchString(lowered) {
			domainPresent = true
			break
		}
	}

	words := len(strings.Fields(lowered))
	if !domainPresent && words > 2 && words >= f.minWordsForNoDomain {
		return true, ReasonNoDomain
	}
	if domainPresent {
		return false, ReasonDomainKeyword
	}
	return false, ReasonShortOrGeneric
}
