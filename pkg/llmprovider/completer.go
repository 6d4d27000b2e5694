package llmprovider

import (
	"context"
	"errors"
)

// Generator is the part of Manager the Completer depends on.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// CompleterOptions are the sampling settings applied to every completion.
type CompleterOptions struct {
	Temperature float64
	MaxTokens   int
}

// Completer turns a fully rendered prompt into reply text.
type Completer struct {
	gen  Generator
	opts CompleterOptions
}

// NewCompleter creates a Completer on top of a Generator, usually a *Manager.
func NewCompleter(gen Generator, opts CompleterOptions) *Completer {
	return &Completer{gen: gen, opts: opts}
}

// Complete sends prompt as a single user message and returns the reply text.
// Every failure is a *ProviderError.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.gen.GenerateContent(ctx, &Request{
		Messages:    []Message{TextMessage(RoleUser, prompt)},
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	})
	if err != nil {
		var pErr *ProviderError
		if errors.As(err, &pErr) {
			return "", err
		}
		return "", &ProviderError{Provider: "llm", Err: err}
	}

	if resp == nil {
		return "", &ProviderError{Provider: "llm", Err: ErrEmptyResponse}
	}
	// A blank reply is a valid answer.
	return resp.Content.Text(), nil
}
