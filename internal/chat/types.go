package chat

import "time"

// Role identifies who produced a Turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one recorded message of the conversation transcript.
type Turn struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type HandleInput struct {
	Message string
}

// --- UseCase Outputs ---

type HandleOutput struct {
	Message string
}

type HistoryOutput struct {
	Turns []Turn
}
