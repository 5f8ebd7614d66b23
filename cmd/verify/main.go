// Command verify checks the built-in knowledge base and NLU corpus for
// internal consistency before a release: every described intent must be
// classifiable, and every fee, learning, and link record must reference
// a known study program or laboratory.
package main

import (
	"fmt"
	"os"

	"github.com/unanda-ft/faqbot/internal/knowledge"
	"github.com/unanda-ft/faqbot/internal/nlu"
)

type verifyResult struct {
	name    string
	passed  bool
	message string
}

func main() {
	fmt.Println("🔍 FT UNANDA FAQ Chatbot - Knowledge Consistency Verification")
	fmt.Println("=============================================================")

	kb := knowledge.Default()
	intents := make(map[string]bool)
	for _, name := range nlu.IntentNames() {
		intents[name] = true
	}

	results := []verifyResult{}
	results = append(results, verifyIntentDescriptions(kb, intents)...)
	results = append(results, verifySPPData(kb)...)
	results = append(results, verifyPracticumFees(kb)...)
	results = append(results, verifyLearningContent(kb)...)
	results = append(results, verifyPMBInfo(kb)...)
	results = append(results, verifyGuidesAndLinks(kb)...)

	fmt.Println("\n📊 Verification Results:")
	fmt.Println("========================")

	passedCount := 0
	failedCount := 0
	for _, result := range results {
		status := "❌"
		if result.passed {
			status = "✅"
			passedCount++
		} else {
			failedCount++
		}
		fmt.Printf("%s %s: %s\n", status, result.name, result.message)
	}

	fmt.Printf("\n📈 Summary: %d passed, %d failed\n", passedCount, failedCount)
	if failedCount > 0 {
		os.Exit(1)
	}
}

// verifyIntentDescriptions checks that every clarification-eligible
// intent exists in the NLU corpus.
func verifyIntentDescriptions(kb *knowledge.Base, intents map[string]bool) []verifyResult {
	results := []verifyResult{}

	missing := []string{}
	for name := range kb.IntentDescriptions {
		if !intents[name] {
			missing = append(missing, name)
		}
	}
	results = append(results, verifyResult{
		name:    "Intent Descriptions Reference Corpus",
		passed:  len(missing) == 0,
		message: fmt.Sprintf("%d described intents, %d missing from corpus %v", len(kb.IntentDescriptions), len(missing), missing),
	})

	results = append(results, verifyResult{
		name:    "Corpus Not Empty",
		passed:  len(intents) > 0,
		message: fmt.Sprintf("%d intents with example utterances", len(intents)),
	})

	return results
}

// verifySPPData checks tuition rows against the known study programs.
func verifySPPData(kb *knowledge.Base) []verifyResult {
	results := []verifyResult{}

	unknownProdi := []string{}
	missingCurrent := []string{}
	for _, fee := range kb.SPP {
		if _, ok := kb.ProdiTerms[fee.Prodi]; !ok {
			unknownProdi = append(unknownProdi, fee.Prodi)
		}
		if _, ok := fee.Periods[kb.CurrentSPPPeriod]; !ok {
			missingCurrent = append(missingCurrent, fee.Prodi)
		}
	}

	results = append(results, verifyResult{
		name:    "SPP Rows Reference Known Prodi",
		passed:  len(unknownProdi) == 0,
		message: fmt.Sprintf("%d rows, unknown prodi: %v", len(kb.SPP), unknownProdi),
	})
	results = append(results, verifyResult{
		name:    "SPP Current Period Coverage",
		passed:  len(missingCurrent) == 0,
		message: fmt.Sprintf("period %q, missing for: %v", kb.CurrentSPPPeriod, missingCurrent),
	})

	return results
}

// verifyPracticumFees checks lab fee records and the default entry.
func verifyPracticumFees(kb *knowledge.Base) []verifyResult {
	results := []verifyResult{}

	_, hasDefault := kb.PracticumFees[knowledge.DefaultFeeKey]
	results = append(results, verifyResult{
		name:    "Default Practicum Fee Present",
		passed:  hasDefault,
		message: fmt.Sprintf("default key %q", knowledge.DefaultFeeKey),
	})

	unknownLabs := []string{}
	for lab := range kb.PracticumFees {
		if lab == knowledge.DefaultFeeKey {
			continue
		}
		if _, ok := kb.LabTerms[lab]; !ok {
			unknownLabs = append(unknownLabs, lab)
		}
	}
	results = append(results, verifyResult{
		name:    "Practicum Fees Reference Known Labs",
		passed:  len(unknownLabs) == 0,
		message: fmt.Sprintf("%d fee rows, unknown labs: %v", len(kb.PracticumFees), unknownLabs),
	})

	return results
}

// verifyLearningContent checks that learning summaries reference known
// study programs and laboratories.
func verifyLearningContent(kb *knowledge.Base) []verifyResult {
	results := []verifyResult{}

	unknownProdi := []string{}
	unknownLabs := []string{}
	emptySummaries := []string{}
	for _, learning := range kb.Learning {
		if _, ok := kb.ProdiTerms[learning.Prodi]; !ok {
			unknownProdi = append(unknownProdi, learning.Prodi)
		}
		if learning.Summary == "" {
			emptySummaries = append(emptySummaries, learning.Prodi)
		}
		for _, lab := range learning.Labs {
			if _, ok := kb.LabTerms[lab.Lab]; !ok {
				unknownLabs = append(unknownLabs, lab.Lab)
			}
		}
	}

	results = append(results, verifyResult{
		name:    "Learning Content References Known Prodi",
		passed:  len(unknownProdi) == 0,
		message: fmt.Sprintf("%d prodi entries, unknown: %v", len(kb.Learning), unknownProdi),
	})
	results = append(results, verifyResult{
		name:    "Learning Labs Reference Known Labs",
		passed:  len(unknownLabs) == 0,
		message: fmt.Sprintf("unknown labs: %v", unknownLabs),
	})
	results = append(results, verifyResult{
		name:    "Learning Summaries Non-Empty",
		passed:  len(emptySummaries) == 0,
		message: fmt.Sprintf("empty summaries for: %v", emptySummaries),
	})

	return results
}

// verifyPMBInfo checks the admission data block.
func verifyPMBInfo(kb *knowledge.Base) []verifyResult {
	results := []verifyResult{}

	results = append(results, verifyResult{
		name:    "PMB Website and Contact",
		passed:  kb.PMB.Website != "" && kb.PMB.Contact != "",
		message: fmt.Sprintf("website %q, contact set: %v", kb.PMB.Website, kb.PMB.Contact != ""),
	})
	results = append(results, verifyResult{
		name:    "PMB Tracks, Fees, and Steps",
		passed:  len(kb.PMB.Tracks) > 0 && len(kb.PMB.Fees) > 0 && len(kb.PMB.GeneralSteps) > 0,
		message: fmt.Sprintf("%d tracks, %d fee rows, %d steps", len(kb.PMB.Tracks), len(kb.PMB.Fees), len(kb.PMB.GeneralSteps)),
	})

	return results
}

// verifyGuidesAndLinks checks the guide texts and per-prodi links.
func verifyGuidesAndLinks(kb *knowledge.Base) []verifyResult {
	results := []verifyResult{}

	results = append(results, verifyResult{
		name:    "KRS and Payment Guides Present",
		passed:  kb.KRSGuide != "" && kb.PaymentGuide != "",
		message: fmt.Sprintf("krs %d chars, payment %d chars", len(kb.KRSGuide), len(kb.PaymentGuide)),
	})

	unknownSchedule := []string{}
	for prodi := range kb.ScheduleLinks {
		if _, ok := kb.ProdiTerms[prodi]; !ok {
			unknownSchedule = append(unknownSchedule, prodi)
		}
	}
	results = append(results, verifyResult{
		name:    "Schedule Links Reference Known Prodi",
		passed:  len(unknownSchedule) == 0,
		message: fmt.Sprintf("%d links, unknown: %v", len(kb.ScheduleLinks), unknownSchedule),
	})

	unknownProfiles := []string{}
	for prodi := range kb.ProdiLinks {
		if _, ok := kb.ProdiTerms[prodi]; !ok {
			unknownProfiles = append(unknownProfiles, prodi)
		}
	}
	results = append(results, verifyResult{
		name:    "Prodi Links Reference Known Prodi",
		passed:  len(unknownProfiles) == 0,
		message: fmt.Sprintf("%d links, unknown: %v", len(kb.ProdiLinks), unknownProfiles),
	})

	return results
}
