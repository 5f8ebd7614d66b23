package dialog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/unanda-ft/faqbot/internal/nlu"
	"github.com/unanda-ft/faqbot/internal/session"
)

// AmbiguityResolver turns too-close-to-call intent distributions into a
// numbered clarification menu. Disambiguation triggers when both the top
// and runner-up scores clear the confidence threshold and their gap is
// smaller than the margin; intents within the margin of the top score
// that carry a user-facing description become menu options.
type AmbiguityResolver struct {
	threshold    float64
	margin       float64
	maxOptions   int
	descriptions map[string]string
}

// NewAmbiguityResolver builds a resolver over the intent description table.
// Intents without a description never appear in a clarification menu.
func NewAmbiguityResolver(threshold, margin float64, maxOptions int, descriptions map[string]string) *AmbiguityResolver {
	return &AmbiguityResolver{
		threshold:    threshold,
		margin:       margin,
		maxOptions:   maxOptions,
		descriptions: descriptions,
	}
}

// Resolve inspects the score distribution and returns the clarification
// options to offer, or nil when the turn should proceed with the top
// intent. Fewer than two describable candidates also aborts clarification.
func (r *AmbiguityResolver) Resolve(result *nlu.Result) []session.ClarifyOption {
	if result == nil || result.Intent == "" || len(result.Scores) < 2 {
		return nil
	}

	type candidate struct {
		intent string
		score  float64
	}
	ranked := make([]candidate, 0, len(result.Scores))
	for intent, score := range result.Scores {
		ranked = append(ranked, candidate{intent: intent, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].intent < ranked[j].intent
	})

	top, second := ranked[0], ranked[1]
	if top.score < r.threshold || second.score < r.threshold {
		return nil
	}
	if top.score-second.score >= r.margin {
		return nil
	}

	// Collect close runner-ups in score order, then keep only the ones
	// with a registered description. Fewer than two survivors aborts the
	// clarification and the turn proceeds with the top intent.
	collected := []candidate{top}
	for _, c := range ranked[1:] {
		if top.score-c.score >= r.margin || len(collected) >= r.maxOptions {
			break
		}
		collected = append(collected, c)
	}

	options := make([]session.ClarifyOption, 0, len(collected))
	for _, c := range collected {
		desc, ok := r.descriptions[c.intent]
		if !ok {
			continue
		}
		options = append(options, session.ClarifyOption{
			Intent:      c.intent,
			Description: desc,
		})
	}
	if len(options) < 2 {
		return nil
	}
	return options
}

// ClarificationPrompt renders the numbered menu shown to the user.
func ClarificationPrompt(options []session.ClarifyOption) string {
	var b strings.Builder
	b.WriteString("Hmm, saya perlu sedikit klarifikasi. Apakah yang Anda maksud:")
	for i, opt := range options {
		fmt.Fprintf(&b, "\n%d. %s?", i+1, opt.Description)
	}
	b.WriteString("\n\nMohon jawab dengan nomor pilihan Anda (contoh: 1).")
	return b.String()
}

// ResolveChoice maps the user's reply during a pending clarification back
// to one of the offered options. Only the bare option number is accepted;
// anything else re-prompts.
func ResolveChoice(reply string, options []session.ClarifyOption) (session.ClarifyOption, bool) {
	trimmed := strings.TrimSpace(reply)
	for i, opt := range options {
		if trimmed == strconv.Itoa(i+1) {
			return opt, true
		}
	}
	return session.ClarifyOption{}, false
}
