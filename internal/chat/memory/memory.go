// Package memory holds the in-process conversation transcript.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"code-assistant/internal/chat"
)

// Transcript prefixes used when rendering history into a prompt.
const (
	UserPrefix      = "Human"
	AssistantPrefix = "AI"
)

// Memory is an ordered, append-only list of turns. It is safe for
// concurrent use.
type Memory struct {
	mu       sync.RWMutex
	turns    []chat.Turn
	maxTurns int
	now      func() time.Time
}

// New creates an empty Memory. maxTurns <= 0 means unbounded; otherwise the
// oldest turns are evicted once the limit is exceeded.
func New(maxTurns int) *Memory {
	if maxTurns < 0 {
		maxTurns = 0
	}
	return &Memory{
		maxTurns: maxTurns,
		now:      time.Now,
	}
}

// Append records a turn at the end of the transcript and returns it.
func (m *Memory) Append(role chat.Role, text string) chat.Turn {
	turn := chat.Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: m.now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, turn)
	if m.maxTurns > 0 && len(m.turns) > m.maxTurns {
		evict := len(m.turns) - m.maxTurns
		m.turns = append(m.turns[:0:0], m.turns[evict:]...)
	}
	return turn
}

// RenderHistory joins the transcript into the prompt's history section, one
// "<Prefix>: <text>" entry per turn separated by a newline.
func (m *Memory) RenderHistory() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.turns) == 0 {
		return ""
	}

	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(prefix(t.Role))
		b.WriteString(": ")
		b.WriteString(t.Text)
	}
	return b.String()
}

// Turns returns a copy of the transcript.
func (m *Memory) Turns() []chat.Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]chat.Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Len reports how many turns are stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.turns)
}

// Reset drops every turn.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = nil
}

func prefix(role chat.Role) string {
	switch role {
	case chat.RoleUser:
		return UserPrefix
	case chat.RoleAssistant:
		return AssistantPrefix
	default:
		return string(role)
	}
}
