package openaicompat

import (
	"context"
	"fmt"
	"math"

	"github.com/sashabaranov/go-openai"
)

func newClientImpl(cfg Config) *clientImpl {
	var oaCfg openai.ClientConfig
	if cfg.Provider == ProviderAzure {
		oaCfg = openai.DefaultAzureConfig(cfg.APIKey, cfg.BaseURL)
		oaCfg.APIVersion = cfg.APIVersion
		deployment := cfg.Deployment
		oaCfg.AzureModelMapperFunc = func(string) string { return deployment }
	} else {
		oaCfg = openai.DefaultConfig(cfg.APIKey)
		oaCfg.BaseURL = cfg.BaseURL
	}
	oaCfg.HTTPClient = cfg.HTTPClient

	return &clientImpl{
		provider: cfg.Provider,
		model:    cfg.Model,
		client:   openai.NewClientWithConfig(oaCfg),
	}
}

// GenerateContent sends a chat completion request
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: chat completion failed: %w", c.provider, err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (c *clientImpl) Provider() string {
	return c.provider
}

func (c *clientImpl) Model() string {
	return c.model
}

func (c *clientImpl) transformRequest(req *Request) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	// temperature is omitempty on the wire; a literal 0 would fall back to
	// the provider default instead of greedy sampling.
	temperature := float32(req.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   req.MaxTokens,
	}
}
