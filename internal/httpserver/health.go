package httpserver

import (
	"github.com/gin-gonic/gin"

	"code-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "code-assistant"
)

type healthResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
	Turns   *int   `json:"turns,omitempty"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Version: HealthVersion, Service: ServiceName}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready once the chat use case answers, along with the
// current transcript length.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	out, err := srv.chatUC.History(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	resp := newHealthResp("ready")
	turns := len(out.Turns)
	resp.Turns = &turns
	response.OK(c, resp)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
