package builder

import "context"

// LLMClient abstracts the generation capability so it can be swapped or
// mocked. Stream calls emit once per text delta, in arrival order, and
// returns once the model reports completion or an error occurs. An error
// returned by emit aborts the stream and is passed through unchanged.
type LLMClient interface {
	Stream(ctx context.Context, prompt Prompt, emit func(delta string) error) error
}

// LLMSettings is the construction-time configuration for a concrete client.
type LLMSettings struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	MaxTokens int
}
