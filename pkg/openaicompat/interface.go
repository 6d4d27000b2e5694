package openaicompat

import "context"

// IClient talks to an OpenAI-compatible chat completions endpoint.
// Implementations are safe for concurrent use.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Provider returns the preset name (groq, openai, qwen...)
	Provider() string

	// Model returns the model being used
	Model() string
}

// New creates a client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
