package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	cfg := Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != DefaultModel || cfg.APIURL != DefaultAPIURL || cfg.Timeout != DefaultTimeout {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	empty := Config{}
	if err := empty.Validate(); err == nil {
		t.Error("expected error when no auth mode is set")
	}
}

func TestGenerateContent_Success(t *testing.T) {
	var got geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "secret" {
			t.Errorf("expected api key in query, got %q", r.URL.RawQuery)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "print(1)"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10}
		}`))
	}))
	defer server.Close()

	client, err := New(context.Background(), Config{APIKey: "secret", Model: "test-model", APIURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "system"}}},
		Messages:          []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if got.GenerationConfig == nil || got.GenerationConfig.Temperature == nil || *got.GenerationConfig.Temperature != 0 {
		t.Errorf("expected explicit zero temperature, got %+v", got.GenerationConfig)
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "system" {
		t.Errorf("system instruction not sent: %+v", got.SystemInstruction)
	}
	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "print(1)" {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 10 || resp.Usage.InputTokens != 7 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
	if client.Model() != "test-model" {
		t.Errorf("Model() = %q", client.Model())
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`quota`))
	}))
	defer server.Close()

	client, _ := New(context.Background(), Config{APIKey: "k", APIURL: server.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Body != "quota" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestGenerateContent_Blocked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"promptFeedback": {"blockReason": "SAFETY"}}`))
	}))
	defer server.Close()

	client, _ := New(context.Background(), Config{APIKey: "k", APIURL: server.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrBlocked) {
		t.Fatalf("expected ErrBlocked, got %v", err)
	}
}

func TestNew_CredentialsFileMissing(t *testing.T) {
	_, err := New(context.Background(), Config{CredentialsFile: "/nonexistent/creds.json"})
	if err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}
