package nlu

import (
	"sort"
	"strings"
)

// classifyFunctionName is the sole function the LLM tiers may call.
const classifyFunctionName = "classify_question"

// IntentNames lists every intent the classifiers may emit, sorted.
func IntentNames() []string {
	intents := make([]string, 0, len(trainingUtterances))
	for intent := range trainingUtterances {
		intents = append(intents, intent)
	}
	sort.Strings(intents)
	return intents
}

// systemPrompt instructs the LLM tiers. The assistant serves
// Indonesian-speaking students, so intent cues are described in
// Indonesian.
func systemPrompt() string {
	var b strings.Builder
	b.WriteString("You classify Indonesian questions sent to the FAQ assistant ")
	b.WriteString("of Fakultas Teknik Universitas Andi Djemma (UNANDA).\n")
	b.WriteString("Always call " + classifyFunctionName + " exactly once.\n")
	b.WriteString("Pick the single best intent from this list:\n")
	for _, intent := range IntentNames() {
		b.WriteString("- " + intent + "\n")
	}
	b.WriteString("\nRules:\n")
	b.WriteString("- confidence is your probability estimate between 0 and 1.\n")
	b.WriteString("- When other intents are also plausible, list up to two of ")
	b.WriteString("them in alternatives with their own confidence, strongest ")
	b.WriteString("first. Leave alternatives empty when the choice is clear.\n")
	b.WriteString("- If the user states their own name (e.g. \"nama saya Budi\"), ")
	b.WriteString("put just the name in person_name.\n")
	b.WriteString("- Do not translate or rephrase the name.\n")
	return b.String()
}

// intentParamDescription documents the intent parameter for the
// function schema.
func intentParamDescription() string {
	return "The best matching intent. One of: " + strings.Join(IntentNames(), ", ")
}
