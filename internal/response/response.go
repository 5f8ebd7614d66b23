// Package response renders the Indonesian answer text for every
// recognized intent, backed by the static knowledge base. Each reply
// carries a category label used for logging and metrics.
package response

import (
	"crypto/rand"
	"encoding/binary"
	"strings"

	"github.com/unanda-ft/faqbot/internal/knowledge"
)

// Reply is one generated answer.
type Reply struct {
	Text     string
	Category string
}

// Input carries everything a handler needs for one turn.
type Input struct {
	Intent   string
	Score    float64
	Prodi    string
	Lab      string
	UserName string
	Text     string
}

// Generator renders replies from the knowledge base. Variant selection
// uses crypto/rand so repeated small talk does not feel canned.
type Generator struct {
	kb   *knowledge.Base
	pick func(n int) int
}

// New returns a generator over the knowledge base.
func New(kb *knowledge.Base) *Generator {
	return &Generator{kb: kb, pick: cryptoPick}
}

func cryptoPick(n int) int {
	if n <= 1 {
		return 0
	}
	var b [8]byte
	_, _ = rand.Read(b[:]) // crypto/rand.Read only fails on catastrophic system failures
	idx := int(binary.LittleEndian.Uint64(b[:])) % n
	if idx < 0 {
		idx = -idx
	}
	return idx
}

func (g *Generator) choose(variants ...string) string {
	return variants[g.pick(len(variants))]
}

// safeUserName returns the trimmed user name, or empty when the stored
// value is too short or a generic word that would read oddly in a
// greeting.
func safeUserName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return ""
	}
	switch strings.ToLower(trimmed) {
	case "saya", "aku", "admin", "bot":
		return ""
	}
	return trimmed
}

// sapaanAwal builds the sentence-opening address: "Baik Budi" with a
// name, plain "Baik" without.
func sapaanAwal(name string) string {
	if safe := safeUserName(name); safe != "" {
		return "Baik " + safe
	}
	return "Baik"
}

// sapaanTengah builds the mid-sentence address: "Budi, " with a name,
// empty without.
func sapaanTengah(name string) string {
	if safe := safeUserName(name); safe != "" {
		return safe + ", "
	}
	return ""
}
