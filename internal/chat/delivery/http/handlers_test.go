package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"code-assistant/internal/chat/memory"
	"code-assistant/internal/chat/usecase"
	"code-assistant/internal/middleware"
	"code-assistant/pkg/llmprovider"
	"code-assistant/pkg/log"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

type historyData struct {
	Turns []struct {
		ID        string `json:"id"`
		Role      string `json:"role"`
		Text      string `json:"text"`
		CreatedAt string `json:"created_at"`
	} `json:"turns"`
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(c *stubCompleter, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	uc := usecase.New(l, memory.New(0), c, usecase.Options{})

	r := gin.New()
	RegisterRoutes(r, New(l, uc), middleware.New(l, middleware.Config{RateLimitPerMin: perMin}))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestGetResponse_Success(t *testing.T) {
	r := setup(&stubCompleter{reply: "```\nprint('hi')\n```"}, 0)

	w, env := do(t, r, http.MethodPost, "/get_response", `{"message":"print hi"}`)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if env.Status != "success" || env.Message != "print('hi')" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestGetResponse_ProviderFailure(t *testing.T) {
	r := setup(&stubCompleter{err: &llmprovider.ProviderError{Provider: "groq", Err: errors.New("invalid api key")}}, 0)

	w, env := do(t, r, http.MethodPost, "/get_response", `{"message":"x"}`)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if env.Status != "error" || !strings.Contains(env.Message, "invalid api key") {
		t.Errorf("unexpected envelope: %+v", env)
	}

	_, hist := do(t, r, http.MethodGet, "/history", "")
	var data historyData
	if err := json.Unmarshal(hist.Data, &data); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(data.Turns) != 0 {
		t.Errorf("expected no turns after failure, got %d", len(data.Turns))
	}
}

func TestGetResponse_Body(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus string
	}{
		{name: "missing message field", body: `{}`, wantStatus: "success"},
		{name: "empty body", body: ``, wantStatus: "success"},
		{name: "malformed json", body: `{"message":`, wantStatus: "error"},
		{name: "wrong type", body: `{"message":42}`, wantStatus: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup(&stubCompleter{reply: "I specialize in programming queries only."}, 0)
			w, env := do(t, r, http.MethodPost, "/get_response", tt.body)
			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
			if env.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q (%+v)", env.Status, tt.wantStatus, env)
			}
		})
	}
}

func TestHistoryAndReset(t *testing.T) {
	r := setup(&stubCompleter{reply: "x = 1"}, 0)
	do(t, r, http.MethodPost, "/get_response", `{"message":"assign x"}`)

	_, env := do(t, r, http.MethodGet, "/history", "")
	var data historyData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(data.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(data.Turns))
	}
	if data.Turns[0].Role != "user" || data.Turns[0].Text != "assign x" || data.Turns[0].ID == "" {
		t.Errorf("unexpected first turn: %+v", data.Turns[0])
	}
	if data.Turns[1].Role != "assistant" || data.Turns[1].Text != "x = 1" {
		t.Errorf("unexpected second turn: %+v", data.Turns[1])
	}

	_, env = do(t, r, http.MethodPost, "/reset", "")
	if env.Status != "success" {
		t.Errorf("reset failed: %+v", env)
	}

	_, env = do(t, r, http.MethodGet, "/history", "")
	data = historyData{}
	_ = json.Unmarshal(env.Data, &data)
	if len(data.Turns) != 0 {
		t.Errorf("expected empty history after reset, got %d", len(data.Turns))
	}
}

func TestGetResponse_RateLimited(t *testing.T) {
	r := setup(&stubCompleter{reply: "ok"}, 10)

	w, _ := do(t, r, http.MethodPost, "/get_response", `{"message":"a"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w, env := do(t, r, http.MethodPost, "/get_response", `{"message":"b"}`)
	if w.Code != http.StatusTooManyRequests || env.Status != "error" {
		t.Errorf("expected 429 error envelope, got %d %+v", w.Code, env)
	}
}
