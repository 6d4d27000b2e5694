package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle runs one exchange: prompt the model with the transcript and the
	// new message, record both turns and return the cleaned reply.
	Handle(ctx context.Context, input HandleInput) (HandleOutput, error)

	// History returns the transcript, oldest turn first.
	History(ctx context.Context) (HistoryOutput, error)

	// Reset drops the whole transcript.
	Reset(ctx context.Context) error
}

// Completer sends a rendered prompt to the language model and returns the
// raw reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Memory is the conversation transcript the UseCase reads and appends to.
type Memory interface {
	Append(role Role, text string) Turn
	RenderHistory() string
	Turns() []Turn
	Reset()
}
