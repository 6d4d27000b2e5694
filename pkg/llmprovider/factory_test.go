package llmprovider

import (
	"context"
	"testing"
	"time"

	"code-assistant/config"
)

func TestInitializeProviders_PriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "test-gemini-key", Model: "gemini-2.5-flash"},
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "test-groq-key", Model: "qwen-2.5-coder-32b"},
			{Name: "deepseek", Enabled: false, Priority: 5, APIKey: "k", Model: "deepseek-chat"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "groq" || providers[0].Model() != "qwen-2.5-coder-32b" {
		t.Errorf("Expected groq first, got %s/%s", providers[0].Name(), providers[0].Model())
	}
	if providers[1].Name() != "gemini" {
		t.Errorf("Expected gemini second, got %s", providers[1].Name())
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.LLMConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "no providers", cfg: &config.LLMConfig{}},
		{
			name: "all disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "groq", Priority: 1, APIKey: "k", Model: "m"},
			}},
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1, Model: "m"},
			}},
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "nope", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			}},
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1, APIKey: "k", Model: "m", Timeout: "soon"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := InitializeProviders(context.Background(), tt.cfg, &mockLogger{}); err == nil {
				t.Error("InitializeProviders() expected error, got nil")
			}
		})
	}
}

func TestInitializeProviders_SkipsBrokenProvider(t *testing.T) {
	logger := &mockLogger{}
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "groq", Enabled: true, Priority: 1, Model: "m"},
			{Name: "alibaba", Enabled: true, Priority: 2, APIKey: "k", Model: "qwen-plus"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "qwen" {
		t.Errorf("Expected only the qwen provider, got %v", providers)
	}
	if len(logger.warnMessages) == 0 {
		t.Error("Expected a warning for the skipped provider")
	}
}

func TestInitializeProviders_Azure(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{
				Name:       "azure",
				Enabled:    true,
				Priority:   1,
				APIKey:     "k",
				BaseURL:    "https://example.openai.azure.com",
				Model:      "gpt-4o",
				Deployment: "code-assistant",
			},
			{Name: "azure", Enabled: true, Priority: 2, APIKey: "k", Model: "gpt-4o"},
		},
	}

	logger := &mockLogger{}
	providers, err := InitializeProviders(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}
	if len(providers) != 1 {
		t.Fatalf("Expected the endpoint-less azure provider to be skipped, got %d providers", len(providers))
	}
	if providers[0].Name() != "azure" || providers[0].Model() != "gpt-4o" {
		t.Errorf("unexpected provider %s/%s", providers[0].Name(), providers[0].Model())
	}
	if len(logger.warnMessages) == 0 {
		t.Error("Expected a warning for the skipped provider")
	}
}

func TestNewManagerConfig(t *testing.T) {
	got, err := NewManagerConfig(&config.LLMConfig{
		RetryAttempts:   1,
		RetryDelay:      "2s",
		MaxTotalTimeout: "0",
	})
	if err != nil {
		t.Fatalf("NewManagerConfig() error = %v", err)
	}
	if got.RetryAttempts != 1 || got.RetryDelay != 2*time.Second || got.MaxTotalTimeout != 0 || got.FallbackEnabled {
		t.Errorf("unexpected config: %+v", got)
	}

	if _, err := NewManagerConfig(&config.LLMConfig{RetryDelay: "later"}); err == nil {
		t.Error("expected error for invalid retry delay")
	}
}
