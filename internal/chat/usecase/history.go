package usecase

import (
	"context"

	"code-assistant/internal/chat"
)

// History returns a snapshot of the transcript.
func (uc *implUseCase) History(ctx context.Context) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{Turns: uc.memory.Turns()}, nil
}

// Reset drops the transcript. It waits for an exchange in flight.
func (uc *implUseCase) Reset(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.memory.Reset()
	uc.l.Info(ctx, "chat.usecase.Reset: transcript cleared")
	return nil
}
