package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kubishi/yaduha-2/internal/agent"
	"github.com/kubishi/yaduha-2/internal/detector"
	"github.com/kubishi/yaduha-2/internal/language"
	"github.com/kubishi/yaduha-2/internal/postprocess"
)

// Pipeline is the deterministic orchestrator. The model only ever performs
// structural decomposition of English and English back-translation; every
// target-language word comes from the local rendering engine.
type Pipeline struct {
	agent  agent.Agent
	module language.Module
	det    *detector.Detector
	logger *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithDetector enables the English check on back-translations.
func WithDetector(d *detector.Detector) PipelineOption {
	return func(p *Pipeline) { p.det = d }
}

// WithPipelineLogger attaches a structured logger.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline builds the pipeline orchestrator for one target language.
func NewPipeline(a agent.Agent, module language.Module, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		agent:  a,
		module: module,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Translate runs parse, render and verify. Token counts and elapsed time sum
// across the parse call and every verification call; the render step is local
// and free.
func (p *Pipeline) Translate(ctx context.Context, text string) (*Translation, error) {
	out := &Translation{Source: text}

	// Parse: one structured call decomposing the English input.
	parseResp, err := p.agent.Complete(ctx, agent.Request{
		Messages: p.parseMessages(text),
		Schema:   language.ListSchema(p.module),
	})
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	out.PromptTokens += parseResp.Usage.PromptTokens
	out.CompletionTokens += parseResp.Usage.CompletionTokens
	out.Elapsed += parseResp.Latency

	sentences, err := p.module.DecodeSentences([]byte(parseResp.Content))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("parse: no sentences produced")
	}

	// Render: local and pure.
	rendered := make([]string, len(sentences))
	for i, sentence := range sentences {
		rendered[i] = sentence.Render()
	}
	out.Target = strings.Join(rendered, " ")

	p.logger.Debug("rendered",
		"language", p.module.Name(),
		"sentences", len(sentences),
		"target", out.Target)

	// Verify: back-translate each structured sentence to English.
	backParts := make([]string, 0, len(sentences))
	for i, sentence := range sentences {
		structural, err := json.Marshal(sentence)
		if err != nil {
			return nil, fmt.Errorf("verify sentence %d: %w", i, err)
		}
		out.Sentences = append(out.Sentences, string(structural))

		verifyResp, err := p.agent.Complete(ctx, agent.Request{
			Messages: p.verifyMessages(string(structural)),
		})
		if err != nil {
			return nil, fmt.Errorf("verify sentence %d: %w", i, err)
		}
		out.PromptTokens += verifyResp.Usage.PromptTokens
		out.CompletionTokens += verifyResp.Usage.CompletionTokens
		out.Elapsed += verifyResp.Latency

		backParts = append(backParts, postprocess.Sentence(verifyResp.Content))
	}
	out.Back.Text = strings.Join(backParts, " ")

	if p.det != nil {
		if err := p.det.CheckEnglish(out.Back.Text); err != nil {
			out.Back.Warning = err.Error()
		}
	}

	return out, nil
}

// parseMessages primes the structural decomposition with the language's
// system prompt and few-shot pairs, then asks for the input.
func (p *Pipeline) parseMessages(text string) []agent.Message {
	messages := []agent.Message{
		agent.SystemMessage(p.module.SystemPrompt() +
			"\nDecompose the user's English into structured sentences matching the response schema." +
			" Use only lemmas from the vocabulary; simplify or drop anything else."),
	}
	for _, ex := range p.module.Examples() {
		structural, err := json.Marshal(map[string]any{"sentences": []any{ex.Sentence}})
		if err != nil {
			continue
		}
		messages = append(messages,
			agent.UserMessage(ex.English),
			agent.Message{Role: agent.RoleAssistant, Content: string(structural)},
		)
	}
	return append(messages, agent.UserMessage(text))
}

// verifyMessages primes back-translation with the inverse few-shot pairs:
// structured sentence in, English out.
func (p *Pipeline) verifyMessages(structural string) []agent.Message {
	messages := []agent.Message{
		agent.SystemMessage("Translate the structured sentence JSON into one plain English sentence." +
			" Respond with the sentence only."),
	}
	for _, ex := range p.module.Examples() {
		data, err := json.Marshal(ex.Sentence)
		if err != nil {
			continue
		}
		messages = append(messages,
			agent.UserMessage(string(data)),
			agent.Message{Role: agent.RoleAssistant, Content: ex.English},
		)
	}
	return append(messages, agent.UserMessage(structural))
}
