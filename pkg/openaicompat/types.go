package openaicompat

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// ErrNoChoices is returned when the API answers without any choice.
var ErrNoChoices = errors.New("openaicompat: response has no choices")

// Config holds client configuration. Empty BaseURL and Model are filled
// from the Provider preset.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client

	// Azure only. Deployment defaults to Model.
	APIVersion string
	Deployment string
}

// Validate validates the configuration and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaicompat: APIKey is required")
	}
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.Provider == ProviderAzure {
		if err := c.validateAzure(); err != nil {
			return err
		}
	}
	preset, ok := presets[c.Provider]
	if !ok && c.BaseURL == "" {
		return fmt.Errorf("openaicompat: unknown provider %q and no base URL", c.Provider)
	}
	if c.BaseURL == "" {
		c.BaseURL = preset.baseURL
	}
	if c.Model == "" {
		if preset.model == "" {
			return fmt.Errorf("openaicompat: model is required for provider %q", c.Provider)
		}
		c.Model = preset.model
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

func (c *Config) validateAzure() error {
	if c.BaseURL == "" {
		return fmt.Errorf("openaicompat: azure endpoint (BaseURL) is required")
	}
	if c.Model == "" && c.Deployment == "" {
		return fmt.Errorf("openaicompat: azure needs a model or a deployment")
	}
	if c.Model == "" {
		c.Model = c.Deployment
	}
	if c.Deployment == "" {
		c.Deployment = c.Model
	}
	if c.APIVersion == "" {
		c.APIVersion = AzureDefaultAPIVersion
	}
	return nil
}

// clientImpl is the go-openai backed implementation of IClient
type clientImpl struct {
	provider string
	model    string
	client   *openai.Client
}

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// Request is a chat completion request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response is the first choice of a chat completion.
type Response struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
