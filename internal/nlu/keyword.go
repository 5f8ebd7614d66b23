package nlu

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/crawlab-team/bm25"
)

// KeywordClassifier scores intents with a local BM25 index over the
// example utterance corpus. It needs no network access and serves as
// the last fallback tier, so construction failure is fatal.
type KeywordClassifier struct {
	index       *bm25.BM25Okapi
	docIntents  []string
	matcher     *TermMatcher
	personExprs []*regexp.Regexp
}

// namePhrasePatterns is the degraded-mode PERSON extraction used when
// no LLM tier is available. The dialogue layer validates candidates
// before trusting them.
var namePhrasePatterns = []string{
	`(?i)\bnama\s+(?:saya|aku|ku)\s+(?:adalah\s+)?([a-zA-Z][a-zA-Z .'-]{0,30})`,
	`(?i)\bpanggil\s+(?:saja\s+)?(?:saya|aku)\s+([a-zA-Z][a-zA-Z .'-]{0,30})`,
	`(?i)\bsaya\s+biasa\s+dipanggil\s+([a-zA-Z][a-zA-Z .'-]{0,30})`,
}

// NewKeywordClassifier builds the BM25 index from the utterance
// corpus.
func NewKeywordClassifier(matcher *TermMatcher) (*KeywordClassifier, error) {
	intents := make([]string, 0, len(trainingUtterances))
	for intent := range trainingUtterances {
		intents = append(intents, intent)
	}
	sort.Strings(intents)

	var corpus []string
	var docIntents []string
	for _, intent := range intents {
		for _, utterance := range trainingUtterances[intent] {
			corpus = append(corpus, utterance)
			docIntents = append(docIntents, intent)
		}
	}

	// k1=1.5, b=0.75 are standard BM25 parameters.
	index, err := bm25.NewBM25Okapi(corpus, tokenize, 1.5, 0.75, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build BM25 index: %w", err)
	}

	exprs := make([]*regexp.Regexp, 0, len(namePhrasePatterns))
	for _, p := range namePhrasePatterns {
		exprs = append(exprs, regexp.MustCompile(p))
	}

	return &KeywordClassifier{
		index:       index,
		docIntents:  docIntents,
		matcher:     matcher,
		personExprs: exprs,
	}, nil
}

// Classify scores every intent against the utterance. Confidence is
// derived from the BM25 rank of each intent's best document, scaled by
// its score relative to the top match.
func (c *KeywordClassifier) Classify(_ context.Context, text string) (*Result, error) {
	result := &Result{
		Scores:   make(map[string]float64),
		Persons:  c.extractPersons(text),
		Provider: ProviderKeyword,
	}
	if c.matcher != nil {
		c.matcher.Annotate(result, text)
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return result, nil
	}

	scores, err := c.index.GetScores(tokens)
	if err != nil {
		return nil, fmt.Errorf("BM25 scoring failed: %w", err)
	}

	// Best raw score per intent.
	best := make(map[string]float64)
	for docID, score := range scores {
		if score <= 0 {
			continue
		}
		intent := c.docIntents[docID]
		if score > best[intent] {
			best[intent] = score
		}
	}
	if len(best) == 0 {
		return result, nil
	}

	type ranked struct {
		intent string
		score  float64
	}
	order := make([]ranked, 0, len(best))
	for intent, score := range best {
		order = append(order, ranked{intent, score})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].score != order[j].score {
			return order[i].score > order[j].score
		}
		return order[i].intent < order[j].intent
	})

	top := order[0].score
	for rank, r := range order {
		result.Scores[r.intent] = (r.score / top) * rankConfidence(rank+1)
	}
	result.Intent = order[0].intent
	result.Score = result.Scores[order[0].intent]
	return result, nil
}

// rankConfidence converts a rank position to a confidence proxy.
// BM25 scores are unbounded and query-dependent, so rank is used
// instead: rank 1 maps to 0.95, rank 5 to 0.80, rank 10 to 0.67.
func rankConfidence(rank int) float64 {
	if rank <= 0 {
		return 0
	}
	return 1.0 / (1.0 + 0.05*float64(rank))
}

func (c *KeywordClassifier) extractPersons(text string) []string {
	var persons []string
	for _, re := range c.personExprs {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if candidate != "" {
			persons = append(persons, candidate)
			break
		}
	}
	return persons
}

// tokenize lowercases and splits on anything that is not a letter or
// digit. Indonesian is space-separated, so no n-gram handling is
// needed.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// IsEnabled reports whether the index was built.
func (c *KeywordClassifier) IsEnabled() bool {
	return c != nil && c.index != nil
}

// Provider returns the backend identity.
func (c *KeywordClassifier) Provider() Provider {
	return ProviderKeyword
}

// Close is a no-op; the index lives in memory.
func (c *KeywordClassifier) Close() error {
	return nil
}
