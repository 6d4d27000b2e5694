package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processGetResponseReq binds the chat request body. A missing body or a
// missing message field yields an empty message.
func (h *handler) processGetResponseReq(c *gin.Context) (getResponseReq, error) {
	var req getResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, errInvalidBody
	}
	return req, nil
}
