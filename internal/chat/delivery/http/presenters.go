package http

import (
	"code-assistant/internal/chat"
	"code-assistant/pkg/response"
)

// --- Request DTOs ---

type getResponseReq struct {
	Message string `json:"message"`
}

func (r getResponseReq) toInput() chat.HandleInput {
	return chat.HandleInput{Message: r.Message}
}

// --- Response DTOs ---

type turnResp struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Text      string            `json:"text"`
	CreatedAt response.DateTime `json:"created_at"`
}

type historyResp struct {
	Turns []turnResp `json:"turns"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{
			ID:        t.ID,
			Role:      string(t.Role),
			Text:      t.Text,
			CreatedAt: response.DateTime(t.CreatedAt),
		}
	}
	return historyResp{Turns: turns}
}
