package usecase

import (
	"context"

	"code-assistant/internal/chat"
	"code-assistant/internal/chat/prompt"
	"code-assistant/pkg/codefence"
)

// Handle runs one exchange. The transcript is only touched once the model
// has answered.
func (uc *implUseCase) Handle(ctx context.Context, input chat.HandleInput) (chat.HandleOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	rendered := prompt.Render(prompt.Request{
		History: uc.memory.RenderHistory(),
		Input:   input.Message,
	})

	raw, err := uc.completer.Complete(ctx, rendered)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Handle: completer.Complete: %v", err)
		return chat.HandleOutput{}, chat.NewServiceError("chat.Handle", err)
	}

	cleaned := codefence.Strip(raw)

	stored := cleaned
	if uc.opts.StoreRawReply {
		stored = raw
	}
	uc.memory.Append(chat.RoleUser, input.Message)
	uc.memory.Append(chat.RoleAssistant, stored)

	uc.l.Debug(ctx, "chat.usecase.Handle: exchange recorded",
		"input_len", len(input.Message),
		"reply_len", len(cleaned),
	)

	return chat.HandleOutput{Message: cleaned}, nil
}
