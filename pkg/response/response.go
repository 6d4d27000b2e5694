package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message sends a 200 success envelope carrying only a message.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Resp{
		Status:  StatusSuccess,
		Message: msg,
	})
}

// OK sends a 200 success envelope with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		Status:  StatusSuccess,
		Message: StatusSuccess,
		Data:    data,
	})
}

// Error sends the error envelope. The HTTP status stays 200; clients read
// the status field.
func Error(c *gin.Context, err error) {
	msg := DefaultErrorMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	c.JSON(http.StatusOK, Resp{
		Status:  StatusError,
		Message: msg,
	})
}

// TooManyRequests aborts with 429 and the error envelope.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Status:  StatusError,
		Message: MessageTooManyRequests,
	})
}
