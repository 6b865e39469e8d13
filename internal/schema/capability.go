package schema

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefinitionError reports an invalid capability registration: a bad name, an
// untyped parameter, or a parameter outside the supported kind set. It is
// raised once, when the capability is built, before any use.
type DefinitionError struct {
	Capability string
	Detail     string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("capability %q: %s", e.Capability, e.Detail)
}

// Handler executes a capability. Arguments arrive already validated and
// conformed against the parameter schema, with defaults applied.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Example is an input/output pair surfaced to the model for few-shot
// guidance. Examples never affect validation.
type Example struct {
	Input  map[string]any `json:"input"`
	Output any            `json:"output"`
}

// Capability is a declared, schema-validated callable offered to the model.
// Build one with New; the zero value is not usable.
type Capability struct {
	Name        string
	Description string
	Parameters  []Property
	Examples    []Example

	handler Handler
}

// New validates and builds a capability descriptor. It returns a
// *DefinitionError when the name is not identifier-safe, the handler is
// missing, or any parameter schema is absent or outside the supported kinds.
func New(name, description string, params []Property, examples []Example, handler Handler) (*Capability, error) {
	if !isIdentifier(name) {
		return nil, &DefinitionError{Capability: name, Detail: "name is not identifier-safe"}
	}
	if handler == nil {
		return nil, &DefinitionError{Capability: name, Detail: "handler is nil"}
	}
	paramSchema := Object("", params...)
	if err := paramSchema.Check(); err != nil {
		return nil, &DefinitionError{Capability: name, Detail: err.Error()}
	}
	return &Capability{
		Name:        name,
		Description: description,
		Parameters:  params,
		Examples:    examples,
		handler:     handler,
	}, nil
}

// MustNew is New for capabilities assembled from static definitions.
func MustNew(name, description string, params []Property, examples []Example, handler Handler) *Capability {
	c, err := New(name, description, params, examples, handler)
	if err != nil {
		panic(err)
	}
	return c
}

// ParameterSchema returns the derived object schema over the parameters.
func (c *Capability) ParameterSchema() *Schema {
	return Object("", c.Parameters...)
}

// Result is the outcome of a capability invocation. IsError marks validation
// failures and handler errors; these are reported back to the model rather
// than aborting the caller.
type Result struct {
	Content any
	IsError bool
}

// Text renders the result for a tool-role conversation turn.
func (r *Result) Text() string {
	if s, ok := r.Content.(string); ok {
		return s
	}
	data, err := json.Marshal(r.Content)
	if err != nil {
		return fmt.Sprintf("%v", r.Content)
	}
	return string(data)
}

// Invoke validates raw JSON arguments against the parameter schema and runs
// the handler. Invalid arguments produce an error result without calling the
// handler; handler errors and panics are captured as error results so a
// failing capability never crashes the loop.
func (c *Capability) Invoke(ctx context.Context, rawArgs []byte) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			res = &Result{Content: fmt.Sprintf("capability %s panicked: %v", c.Name, r), IsError: true}
		}
	}()

	conformed, err := c.ParameterSchema().ValidateJSON(rawArgs)
	if err != nil {
		return &Result{Content: fmt.Sprintf("invalid arguments for %s: %v", c.Name, err), IsError: true}
	}

	args, _ := conformed.(map[string]any)
	out, err := c.handler(ctx, args)
	if err != nil {
		return &Result{Content: fmt.Sprintf("capability %s failed: %v", c.Name, err), IsError: true}
	}
	return &Result{Content: out}
}

// FunctionSchema renders the capability as an OpenAI-style function tool
// declaration, including few-shot examples in the description when present.
func (c *Capability) FunctionSchema() map[string]any {
	description := c.Description
	if len(c.Examples) > 0 {
		if data, err := json.Marshal(c.Examples); err == nil {
			description += "\n\nExamples: " + string(data)
		}
	}
	return map[string]any{
		"type": "function",
		"function": map[string]any{
			"name":        c.Name,
			"description": description,
			"parameters":  c.ParameterSchema(),
			"strict":      false,
		},
	}
}

// Registry is an immutable, name-keyed capability set built once at startup.
type Registry struct {
	ordered []*Capability
	byName  map[string]*Capability
}

// NewRegistry builds a registry, rejecting duplicate capability names.
func NewRegistry(caps ...*Capability) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Capability, len(caps))}
	for _, c := range caps {
		if _, exists := r.byName[c.Name]; exists {
			return nil, &DefinitionError{Capability: c.Name, Detail: "duplicate capability name"}
		}
		r.byName[c.Name] = c
		r.ordered = append(r.ordered, c)
	}
	return r, nil
}

// Get returns the capability registered under name.
func (r *Registry) Get(name string) (*Capability, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// All returns the capabilities in registration order.
func (r *Registry) All() []*Capability {
	return r.ordered
}

// Len reports the number of registered capabilities.
func (r *Registry) Len() int {
	return len(r.ordered)
}
