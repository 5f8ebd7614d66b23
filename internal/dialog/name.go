package dialog

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameSource records which extraction stage produced a user name.
type NameSource string

const (
	NameSourceNER       NameSource = "ner"
	NameSourceRule      NameSource = "rule"
	NameSourceShortText NameSource = "short_input_catch_all"
)

// nameStoplist holds tokens that are never acceptable as a person name.
var nameStoplist = map[string]struct{}{
	"iya": {}, "ya": {}, "oke": {}, "ok": {}, "baik": {}, "siap": {},
	"bisa": {}, "halo": {}, "hai": {}, "permisi": {}, "admin": {},
	"bot": {}, "chatbot": {}, "makasih": {}, "terima kasih": {},
	"thank you": {},
}

// namePhraseExpr detects introduction phrases; its presence promotes an
// input into the name-handling path even without a provide_name intent.
var namePhraseExpr = regexp.MustCompile(`\b(?:nama|panggilan)\s+(?:saya|aku|ku)\b|\bpanggil(?:\s+(?:saya|aku|ku))?\b`)

// namePattern pairs an extraction regexp with the validator applied to its
// capture. Patterns run in order from most to least specific; the first
// pattern whose capture validates wins.
type namePattern struct {
	expr     *regexp.Regexp
	validate func(string) bool
}

var extractionCascade = []namePattern{
	{regexp.MustCompile(`(?i)^(?:nama|panggilan)\s+(?:saya|aku|ku)\s+(?:adalah|yaitu)\s+([\pL\s'-]+)`), validCapturedName},
	{regexp.MustCompile(`(?i)^(?:nama|panggilan)\s+(?:saya|aku|ku)\s+([\pL\s'-]+)`), validCapturedName},
	{regexp.MustCompile(`(?i)^(?:saya|aku|ku)\s+(?:adalah|yaitu)\s+([\pL\s'-]+)`), validCapturedName},
	{regexp.MustCompile(`(?i)^panggil(?:\s+(?:saya|aku|ku))?\s+([\pL\s'-]+)`), validCapturedName},
	{regexp.MustCompile(`(?i)^(?:namaku|nama ku|panggilanku|panggilan ku)\s+([\pL\s'-]+)`), validCapturedName},
	{regexp.MustCompile(`(?i)^(?:nama|panggilan)\s+([\pL\s'-]+)`), validCapturedName},
}

var indonesianTitle = cases.Title(language.Indonesian)

// ContainsNamePhrase reports whether the text carries an introduction
// phrase such as "nama saya" or "panggil aku".
func ContainsNamePhrase(text string) bool {
	return namePhraseExpr.MatchString(strings.ToLower(strings.TrimSpace(text)))
}

// ValidPersonName applies the shared constraints for any name candidate,
// regardless of which stage produced it.
func ValidPersonName(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if len(trimmed) <= 1 || len(trimmed) > 30 {
		return false
	}
	if len(strings.Fields(trimmed)) > 5 {
		return false
	}
	lowered := strings.ToLower(trimmed)
	if _, banned := nameStoplist[lowered]; banned {
		return false
	}
	return !containsPronoun(lowered)
}

func validCapturedName(candidate string) bool {
	return ValidPersonName(candidate)
}

func containsPronoun(lowered string) bool {
	padded := " " + lowered + " "
	for _, pronoun := range []string{" saya ", " aku ", " ku "} {
		if strings.Contains(padded, pronoun) {
			return true
		}
	}
	return false
}

// ExtractNameByRules runs the regexp cascade over the raw input and falls
// back to treating a very short input as a bare name. It returns the
// candidate and the stage that produced it.
func ExtractNameByRules(text string) (string, NameSource, bool) {
	for _, p := range extractionCascade {
		m := p.expr.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		captured := strings.Trim(m[len(m)-1], " .,?!")
		if captured != "" && p.validate(captured) {
			return captured, NameSourceRule, true
		}
	}

	// The catch-all treats a short reply such as "Budi" as a name, which
	// only makes sense right after the bot asked for one. Callers gate it
	// on that context.
	trimmed := strings.Trim(strings.TrimSpace(text), " .,?!")
	if len(trimmed) > 1 && len(trimmed) <= 15 && len(strings.Fields(trimmed)) <= 2 {
		lowered := strings.ToLower(trimmed)
		if _, banned := nameStoplist[lowered]; !banned && !containsPronoun(lowered) {
			return trimmed, NameSourceShortText, true
		}
	}
	return "", "", false
}

// nerStoplist rejects model person candidates that are honorifics,
// pronouns, or chat roles rather than names.
var nerStoplist = map[string]struct{}{
	"bapak": {}, "ibu": {}, "mas": {}, "mbak": {}, "kak": {}, "pak": {},
	"bu": {}, "nama": {}, "panggilan": {}, "saya": {}, "aku": {},
	"ku": {}, "admin": {}, "bot": {}, "chatbot": {},
}

// FilterModelPersonName picks the first usable person candidate from the
// intent model. An intro phrase immediately before the candidate means
// the model likely grabbed the phrase itself, so such hits are skipped.
func FilterModelPersonName(candidates []string, text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) <= 1 || len(trimmed) > 30 {
			continue
		}
		if len(strings.Fields(trimmed)) > 5 {
			continue
		}
		if _, banned := nerStoplist[strings.ToLower(trimmed)]; banned {
			continue
		}
		if nearIntroPhrase(lowered, strings.ToLower(trimmed)) {
			continue
		}
		return trimmed, true
	}
	return "", false
}

// nearIntroPhrase guards against the model returning "saya Budi" instead
// of "Budi" for inputs like "nama saya Budi". The rule cascade recovers
// those inputs instead.
func nearIntroPhrase(loweredText, loweredCandidate string) bool {
	idx := strings.Index(loweredText, loweredCandidate)
	if idx < 0 {
		return false
	}
	start := max(0, idx-10)
	end := min(len(loweredText), idx+len(loweredCandidate)+10)
	window := loweredText[start:end]
	for _, phrase := range []string{"nama saya", "nama aku", "nama ku", "panggil saya", "panggil aku", "panggil ku"} {
		if strings.Contains(window, phrase) {
			return true
		}
	}
	return false
}

// CanonicalName normalizes a raw candidate to the form stored in the
// session, Title-cased per Indonesian conventions.
func CanonicalName(raw string) string {
	return indonesianTitle.String(strings.TrimSpace(raw))
}
