// Package agent is the model gateway: conversation types, an
// OpenAI-compatible chat-completions client, and the budget-bounded
// tool-calling loop that drives capability execution.
package agent

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kubishi/yaduha-2/internal/schema"
)

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one turn of an append-only conversation.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall is a model request to invoke a capability.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// Usage is the token spend of one or more model calls.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Add accumulates another call's spend.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
}

// Request is one model call. A nil Schema asks for plain text; a non-nil
// Schema constrains the output to conforming JSON. Capabilities are offered
// as tools the model may request.
type Request struct {
	Messages     []Message
	Schema       *schema.Schema
	Capabilities []*schema.Capability
}

// Response is the model's answer to a single Request. When ToolCalls is
// non-empty, Content is usually empty and the caller owes tool-result turns.
type Response struct {
	Content   string
	ToolCalls []ToolCall
	Usage     Usage
	Latency   time.Duration
}

// Agent is anything that can answer one model call. Client implements it over
// HTTP; tests substitute scripted fakes.
type Agent interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// SystemMessage builds a system turn.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
