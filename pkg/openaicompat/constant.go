package openaicompat

import "time"

// Provider presets. Each one is an OpenAI-compatible chat completions API.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderQwen   = "qwen"

	// ProviderAzure is an Azure OpenAI resource. BaseURL is the resource
	// endpoint and requests are routed to a deployment.
	ProviderAzure = "azure"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OpenAIBaseURL = "https://api.openai.com/v1"
	QwenBaseURL   = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	GroqDefaultModel   = "qwen-2.5-coder-32b"
	OpenAIDefaultModel = "gpt-4o-mini"
	QwenDefaultModel   = "qwen-plus"

	AzureDefaultAPIVersion = "2024-10-21"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

var presets = map[string]struct {
	baseURL string
	model   string
}{
	ProviderGroq:   {GroqBaseURL, GroqDefaultModel},
	ProviderOpenAI: {OpenAIBaseURL, OpenAIDefaultModel},
	ProviderQwen:   {QwenBaseURL, QwenDefaultModel},
}
