package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between StudyFlow and any LLM backend.
// The tutor service talks to it and nothing else; decorators for
// retry and event logging stack on top of the same interface.
type Provider interface {
	// Generate sends one request and returns the reply. When
	// req.Schema is set the provider must return JSON valid against
	// that schema, using its native structured-output mechanism
	// where one exists.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model the provider is configured to use.
	ModelID() string
}

// Request describes one call to the model.
type Request struct {
	// System sets the model's role. StudyFlow always frames it as a
	// study tutor for the student's exam category.
	System string

	// Messages is the conversation. Doubt and insight calls are
	// single turn, so this is almost always one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the reply must satisfy.
	// When nil the reply is free text carried as a raw JSON string.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature is the sampling temperature in [0, 1]. Zero means
	// deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure a reply must take.
type Schema struct {
	// Name identifies the schema across providers (tool name for
	// Anthropic, schema name for OpenAI) and keys the compile cache.
	// Kebab-case, e.g. "exam-insight".
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is what came back.
type Response struct {
	// Content is the reply. Schema-validated JSON when the request
	// carried a schema, otherwise the raw text.
	Content json.RawMessage

	// Usage is the token count for this call, as reported by the
	// provider. Feeds the llm_request_events audit log.
	Usage Usage

	// Model is the model that actually served the request, which can
	// differ from the configured one behind routing services.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
