// Package knowledge provides the static knowledge base for the
// Fakultas Teknik UNANDA FAQ assistant. These data are maintained
// manually and updated periodically.
package knowledge

import (
	"fmt"
	"strings"
)

// DefaultFeeKey marks the practicum fee entry used when a laboratory
// has no specific fee record.
const DefaultFeeKey = "_default"

// PracticumFee describes the fee components of a laboratory practicum.
// ExamAmount of zero means no separate final-exam fee is charged.
type PracticumFee struct {
	Amount     int64
	ExamAmount int64
	Notes      string
}

// SPPFee holds the per-semester tuition of one study program, keyed by
// enrollment period.
type SPPFee struct {
	Prodi   string
	Periods map[string]int64
}

// PMBTrack is one admission track offered to new students.
type PMBTrack struct {
	Name        string
	Description string
}

// PMBFee is one component of the initial admission cost.
type PMBFee struct {
	Name   string
	Amount int64
	Notes  string
}

// PMBInfo bundles everything the assistant knows about new-student
// admission (Penerimaan Mahasiswa Baru).
type PMBInfo struct {
	Website      string
	Contact      string
	Tracks       []PMBTrack
	Fees         []PMBFee
	GeneralSteps []string
}

// LabLearning describes what students work on in one laboratory.
type LabLearning struct {
	Lab         string
	Description string
}

// ProdiLearning holds the learning summary of a study program and the
// laboratories attached to it, in display order.
type ProdiLearning struct {
	Prodi   string
	Summary string
	Labs    []LabLearning
}

// Base is the assembled knowledge base handed to the response
// generator. Empty fields degrade the matching answers instead of
// failing the turn.
type Base struct {
	IntentDescriptions map[string]string
	ProdiTerms         map[string][]string
	LabTerms           map[string][]string
	SPP                []SPPFee
	PracticumFees      map[string]PracticumFee
	PMB                PMBInfo
	Learning           []ProdiLearning
	KRSGuide           string
	PaymentGuide       string
	ScheduleLinks      map[string]string
	ProdiLinks         map[string]string
	TUContact          string
	CurrentSPPPeriod   string
}

// Default returns the built-in knowledge base.
func Default() *Base {
	return &Base{
		IntentDescriptions: IntentDescriptions,
		ProdiTerms:         ProdiTerms,
		LabTerms:           LabTerms,
		SPP:                SPPFees,
		PracticumFees:      PracticumFees,
		PMB:                PMB,
		Learning:           LearningContent,
		KRSGuide:           KRSSevimaGuide,
		PaymentGuide:       PaymentTokopediaGuide,
		ScheduleLinks:      ScheduleLinks,
		ProdiLinks:         ProdiLinks,
		TUContact:          TUContact,
		CurrentSPPPeriod:   CurrentSPPPeriod,
	}
}

// SPPForProdi returns the tuition record of one study program.
func (b *Base) SPPForProdi(prodi string) (SPPFee, bool) {
	for _, fee := range b.SPP {
		if fee.Prodi == prodi {
			return fee, true
		}
	}
	return SPPFee{}, false
}

// SPPProdiOptions lists the study programs that have tuition data, in
// table order.
func (b *Base) SPPProdiOptions() []string {
	options := make([]string, 0, len(b.SPP))
	for _, fee := range b.SPP {
		if len(fee.Periods) > 0 {
			options = append(options, fee.Prodi)
		}
	}
	return options
}

// PracticumFeeFor resolves the fee of one laboratory, falling back to
// the default entry. The second result reports whether the fee is
// lab-specific.
func (b *Base) PracticumFeeFor(lab string) (PracticumFee, bool, bool) {
	if fee, ok := b.PracticumFees[lab]; ok {
		return fee, true, true
	}
	fee, ok := b.PracticumFees[DefaultFeeKey]
	return fee, false, ok
}

// LabsWithFeeInfo lists laboratories that have a fee record, in table
// order of the learning content so the listing is deterministic.
func (b *Base) LabsWithFeeInfo() []string {
	var labs []string
	for _, prodi := range b.Learning {
		for _, lab := range prodi.Labs {
			if _, ok := b.PracticumFees[lab.Lab]; ok {
				labs = append(labs, lab.Lab)
			}
		}
	}
	return labs
}

// LearningForProdi returns the learning content of one study program.
func (b *Base) LearningForProdi(prodi string) (ProdiLearning, bool) {
	for _, p := range b.Learning {
		if p.Prodi == prodi {
			return p, true
		}
	}
	return ProdiLearning{}, false
}

// ProdiWithLearningSummary lists programs that have a non-empty
// learning summary.
func (b *Base) ProdiWithLearningSummary() []string {
	var options []string
	for _, p := range b.Learning {
		if strings.TrimSpace(p.Summary) != "" {
			options = append(options, p.Prodi)
		}
	}
	return options
}

// LabsWithLearningDesc lists laboratories with a non-empty learning
// description, deduplicated, in table order.
func (b *Base) LabsWithLearningDesc() []string {
	seen := make(map[string]bool)
	var labs []string
	for _, prodi := range b.Learning {
		for _, lab := range prodi.Labs {
			if strings.TrimSpace(lab.Description) == "" || seen[lab.Lab] {
				continue
			}
			seen[lab.Lab] = true
			labs = append(labs, lab.Lab)
		}
	}
	return labs
}

// LabOwners lists the study programs whose learning content contains
// the laboratory, and returns the first non-empty description found.
// When preferProdi matches an owner, that owner's description wins.
func (b *Base) LabOwners(lab, preferProdi string) (owners []string, description, descProdi string) {
	for _, prodi := range b.Learning {
		for _, l := range prodi.Labs {
			if l.Lab != lab || strings.TrimSpace(l.Description) == "" {
				continue
			}
			owners = append(owners, prodi.Prodi)
			if preferProdi != "" && prodi.Prodi == preferProdi {
				description = l.Description
				descProdi = prodi.Prodi
			} else if description == "" {
				description = l.Description
				descProdi = prodi.Prodi
			}
		}
	}
	return owners, description, descProdi
}

// FormatIDR renders an amount as an Indonesian Rupiah string with dots
// as thousand separators, e.g. 1500000 becomes "Rp 1.500.000".
func FormatIDR(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	if amount < 0 {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "Rp " + strings.Join(parts, ".")
	if amount < 0 {
		out = "-" + out
	}
	return out
}
