package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "code-assistant/internal/chat/delivery/http"
)

// setupChatDomain builds the chat handler and registers its routes at the
// root: POST /get_response, GET /history, POST /reset.
func (srv HTTPServer) setupChatDomain(ctx context.Context, r gin.IRouter) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(r, h, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
