package agent

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kubishi/yaduha-2/internal/schema"
)

// State of the tool-calling loop.
type State string

const (
	StateAwaitingModel  State = "awaiting_model"
	StateExecutingTools State = "executing_tools"
	StateDone           State = "done"
	StateFailed         State = "failed"
)

// Terminal reports whether the loop has finished.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// DefaultTurnBudget bounds capability-request turns per loop run. The final
// answer turn is not counted against it.
const DefaultTurnBudget = 10

// Evidence records one capability invocation: raw arguments in, result text
// out. Kept in execution order.
type Evidence struct {
	Capability string
	Input      string
	Output     string
	IsError    bool
}

// LoopResult is the outcome of a completed loop run.
type LoopResult struct {
	Content  string
	Usage    Usage
	Elapsed  time.Duration
	Evidence []Evidence
	Turns    int
}

// Loop drives a conversation until the model produces a final response:
// AwaitingModel → ExecutingTools → AwaitingModel … → Done | Failed.
//
// Capability execution errors are recoverable: the error becomes the tool
// turn's content and the model gets another chance. An unknown capability
// name, a schema-violating final answer or a capability request past the
// turn budget abort the run.
type Loop struct {
	agent    Agent
	registry *schema.Registry
	budget   int
	logger   *slog.Logger

	state State
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithTurnBudget overrides the capability-turn budget.
func WithTurnBudget(budget int) LoopOption {
	return func(l *Loop) {
		if budget > 0 {
			l.budget = budget
		}
	}
}

// WithLoopLogger attaches a structured logger. The loop is silent by default.
func WithLoopLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop builds a loop over an agent and a capability registry. A nil
// registry offers no tools.
func NewLoop(a Agent, registry *schema.Registry, opts ...LoopOption) *Loop {
	l := &Loop{
		agent:    a,
		registry: registry,
		budget:   DefaultTurnBudget,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:    StateAwaitingModel,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State reports the loop's current state.
func (l *Loop) State() State { return l.state }

// Run drives the conversation to completion. outputSchema constrains the
// final response; nil asks for plain text. Usage and elapsed time accumulate
// across every model turn.
func (l *Loop) Run(ctx context.Context, messages []Message, outputSchema *schema.Schema) (*LoopResult, error) {
	var capabilities []*schema.Capability
	if l.registry != nil {
		capabilities = l.registry.All()
	}

	conversation := make([]Message, len(messages))
	copy(conversation, messages)

	result := &LoopResult{}
	l.state = StateAwaitingModel

	for turn := 0; ; turn++ {
		result.Turns = turn + 1

		resp, err := l.agent.Complete(ctx, Request{
			Messages:     conversation,
			Schema:       outputSchema,
			Capabilities: capabilities,
		})
		if err != nil {
			l.state = StateFailed
			return nil, err
		}
		result.Usage.Add(resp.Usage)
		result.Elapsed += resp.Latency

		if len(resp.ToolCalls) == 0 {
			if outputSchema != nil {
				if _, err := outputSchema.ValidateJSON([]byte(resp.Content)); err != nil {
					l.state = StateFailed
					return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
				}
			}
			l.state = StateDone
			result.Content = resp.Content
			return result, nil
		}

		// The budget bounds capability-request turns only: a run may use
		// exactly budget tool turns and still deliver its final answer.
		// Failing before execution keeps the count exact.
		if turn >= l.budget {
			l.state = StateFailed
			return nil, fmt.Errorf("%w: %d capability turns", ErrIterationBudget, l.budget)
		}

		l.state = StateExecutingTools
		conversation = append(conversation, Message{
			Role:      RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		// Sequential execution in request order; results appended in that
		// order before resubmission.
		for _, call := range resp.ToolCalls {
			capability, ok := l.lookup(call.Name)
			if !ok {
				l.state = StateFailed
				return nil, fmt.Errorf("%w: %q", ErrToolNotFound, call.Name)
			}

			res := capability.Invoke(ctx, call.Arguments)
			result.Evidence = append(result.Evidence, Evidence{
				Capability: call.Name,
				Input:      string(call.Arguments),
				Output:     res.Text(),
				IsError:    res.IsError,
			})
			l.logger.Debug("capability invoked",
				"capability", call.Name,
				"call_id", call.ID,
				"error", res.IsError)

			conversation = append(conversation, Message{
				Role:       RoleTool,
				Content:    res.Text(),
				ToolCallID: call.ID,
			})
		}
		l.state = StateAwaitingModel
	}
}

func (l *Loop) lookup(name string) (*schema.Capability, bool) {
	if l.registry == nil {
		return nil, false
	}
	return l.registry.Get(name)
}
