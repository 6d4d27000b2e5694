package http

import (
	"github.com/gin-gonic/gin"

	"code-assistant/pkg/response"
)

// GetResponse godoc
// @Summary     Send a chat message
// @Description Sends the message with the conversation so far to the model and returns the cleaned reply. Failures are reported with status "error" and HTTP 200.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     getResponseReq true "Chat message"
// @Success     200  {object} response.Resp  "status success or error"
// @Failure     429  {object} response.Resp  "Too many requests"
// @Router      /get_response [POST]
func (h *handler) GetResponse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetResponseReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.http.GetResponse: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.http.GetResponse: uc.Handle: %v", err)
		response.Error(c, err)
		return
	}

	response.Message(c, output.Message)
}

// History godoc
// @Summary     Conversation transcript
// @Description Returns every recorded turn, oldest first.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp{data=historyResp}
// @Router      /history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx)
	if err != nil {
		h.l.Errorf(ctx, "chat.http.History: uc.History: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Reset godoc
// @Summary     Clear the conversation
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx); err != nil {
		h.l.Errorf(ctx, "chat.http.Reset: uc.Reset: %v", err)
		response.Error(c, err)
		return
	}

	response.Message(c, "conversation cleared")
}
