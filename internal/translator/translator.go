// Package translator holds the two orchestrators that turn English into a
// grammatically constrained target language: the pipeline (structured parse,
// local render, back-translation) and the agentic path (a tool-calling loop
// with translation capabilities).
package translator

import (
	"context"
	"time"

	"github.com/kubishi/yaduha-2/internal/agent"
)

// BackTranslation is the English rendering of what the structured sentences
// actually say, produced by the verification step.
type BackTranslation struct {
	Text string
	// Mismatch is set when the back-translation does not read as English,
	// or when verification was skipped.
	Warning string
}

// Translation is the complete result of one translate call.
type Translation struct {
	// Source is the English input.
	Source string
	// Target is the rendered target-language text.
	Target string
	// Back is the round-trip English verification.
	Back BackTranslation

	PromptTokens     int
	CompletionTokens int
	Elapsed          time.Duration

	// Confidence is the model's advisory self-assessment (agentic path
	// only): low, medium or high. Never verified.
	Confidence string
	// Evidence lists capability invocations made while translating
	// (agentic path only), in execution order.
	Evidence []agent.Evidence
	// Sentences is the structured decomposition (pipeline path only), as
	// the wire JSON the model produced.
	Sentences []string
}

// Translator is either orchestrator.
type Translator interface {
	Translate(ctx context.Context, text string) (*Translation, error)
}
