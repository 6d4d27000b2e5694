package usecase

import (
	"sync"

	"code-assistant/internal/chat"
	"code-assistant/pkg/log"
)

// Options tune how exchanges are recorded.
type Options struct {
	// StoreRawReply records the model reply before fence stripping.
	StoreRawReply bool
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l         log.Logger
	memory    chat.Memory
	completer chat.Completer
	opts      Options

	// mu serializes exchanges so each one sees the transcript left by the
	// previous one.
	mu sync.Mutex
}

// New creates a new chat UseCase implementation.
func New(l log.Logger, memory chat.Memory, completer chat.Completer, opts Options) *implUseCase {
	return &implUseCase{
		l:         l,
		memory:    memory,
		completer: completer,
		opts:      opts,
	}
}
