package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/kubishi/yaduha-2/internal/agent"
	"github.com/kubishi/yaduha-2/internal/language"
	"github.com/kubishi/yaduha-2/internal/schema"
)

// Confidence levels the agentic path may self-report.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// responseSchema constrains the agentic path's final answer.
var responseSchema = schema.Object("the finished translation",
	schema.Field("translation", schema.String("the target-language text")),
	schema.Field("confidence", schema.Enum("self-assessed confidence",
		ConfidenceLow, ConfidenceMedium, ConfidenceHigh)),
)

// Agentic is the tool-driven orchestrator: a single tool-calling-loop run in
// which the model decides when to consult the offered capabilities.
type Agentic struct {
	agent    agent.Agent
	module   language.Module
	registry *schema.Registry
	budget   int
	logger   *slog.Logger
}

// AgenticOption configures an Agentic translator.
type AgenticOption func(*Agentic)

// WithAgenticBudget overrides the loop's capability-turn budget.
func WithAgenticBudget(budget int) AgenticOption {
	return func(a *Agentic) {
		if budget > 0 {
			a.budget = budget
		}
	}
}

// WithAgenticLogger attaches a structured logger.
func WithAgenticLogger(logger *slog.Logger) AgenticOption {
	return func(a *Agentic) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAgentic builds the agentic orchestrator. The registry holds the
// capabilities offered to the model; nil offers none.
func NewAgentic(a agent.Agent, module language.Module, registry *schema.Registry, opts ...AgenticOption) *Agentic {
	ag := &Agentic{
		agent:    a,
		module:   module,
		registry: registry,
		budget:   agent.DefaultTurnBudget,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(ag)
	}
	return ag
}

// Translate runs one loop to completion. Evidence comes from the loop's
// invocation records; confidence is carried through as advisory metadata.
func (a *Agentic) Translate(ctx context.Context, text string) (*Translation, error) {
	loop := agent.NewLoop(a.agent, a.registry,
		agent.WithTurnBudget(a.budget),
		agent.WithLoopLogger(a.logger))

	messages := []agent.Message{
		agent.SystemMessage(a.module.SystemPrompt() +
			"\nTranslate the user's English into " + a.module.Name() + "." +
			" Use the available tools when they help. Respond with the translation and your confidence."),
		agent.UserMessage(text),
	}

	result, err := loop.Run(ctx, messages, responseSchema)
	if err != nil {
		return nil, err
	}

	var answer struct {
		Translation string `json:"translation"`
		Confidence  string `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(result.Content), &answer); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}

	a.logger.Debug("agentic translation",
		"language", a.module.Name(),
		"turns", result.Turns,
		"evidence", len(result.Evidence),
		"confidence", answer.Confidence)

	return &Translation{
		Source:           text,
		Target:           answer.Translation,
		Confidence:       answer.Confidence,
		Evidence:         result.Evidence,
		PromptTokens:     result.Usage.PromptTokens,
		CompletionTokens: result.Usage.CompletionTokens,
		Elapsed:          result.Elapsed,
	}, nil
}
