package agent

import "errors"

// Sentinel errors for the gateway and the tool-calling loop. All of them are
// fatal: callers receive them wrapped with context and match with errors.Is.
var (
	// ErrUpstream marks a failed model request: transport error, non-2xx
	// status or an undecodable body. Surfaced unchanged, never retried here.
	ErrUpstream = errors.New("upstream request failed")

	// ErrToolNotFound marks a model request for a capability that was never
	// offered.
	ErrToolNotFound = errors.New("tool not found")

	// ErrSchemaViolation marks final model output that does not conform to
	// the declared output schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrIterationBudget marks a loop that exhausted its model-turn budget
	// without reaching a final response.
	ErrIterationBudget = errors.New("iteration budget exceeded")
)
