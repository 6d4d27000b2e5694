package prompt_test

import (
	"strings"
	"testing"

	"code-assistant/internal/chat/prompt"
)

func TestRender(t *testing.T) {
	out := prompt.Render(prompt.Request{
		History: "Human: hi\nAI: print('hi')",
		Input:   "reverse a string in go",
	})

	rules := []string{
		"Respond ONLY to programming/code-related questions",
		"Return PURE CODE without any explanations, comments, or markdown",
		"Never use code blocks (```) or natural language",
		"Format code with proper line breaks and indentation",
		`respond "I specialize in programming queries only."`,
	}
	for _, r := range rules {
		if !strings.Contains(out, r) {
			t.Errorf("prompt missing rule %q", r)
		}
	}

	if !strings.Contains(out, "Conversation so far:\nHuman: hi\nAI: print('hi')\n") {
		t.Errorf("prompt missing history section:\n%s", out)
	}
	if !strings.HasSuffix(out, "User query: reverse a string in go\n") {
		t.Errorf("prompt should end with the user query, got:\n%s", out)
	}
}

func TestRender_EmptySlots(t *testing.T) {
	out := prompt.Render(prompt.Request{})

	if !strings.Contains(out, "Conversation so far:\n\n") {
		t.Errorf("expected empty history section, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "User query: \n") {
		t.Errorf("expected empty input slot, got:\n%s", out)
	}
}

func TestRender_InputPassedThrough(t *testing.T) {
	input := "100% of %s and %d\n```go\nx\n```"
	out := prompt.Render(prompt.Request{Input: input})

	if !strings.Contains(out, "User query: "+input) {
		t.Errorf("input was altered:\n%s", out)
	}
	if strings.Contains(out, "%!") {
		t.Errorf("format verbs in input leaked into output:\n%s", out)
	}
}
