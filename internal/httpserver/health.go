package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

const (
	RootMessage = "AI Travel Assistant API is running"
	ServiceName = "travel-assistant"
	Version     = "1.0.0"
)

type healthResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
}

func (srv HTTPServer) healthStatus(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, healthResp{
			Status:      status,
			Service:     ServiceName,
			Version:     Version,
			Environment: srv.environment,
			Uptime:      time.Since(srv.startedAt).Truncate(time.Second).String(),
		})
	}
}

// root is what the web client polls before enabling the chat box.
// @Summary Root
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

// healthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { srv.healthStatus("healthy")(c) }

// readyCheck godoc
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { srv.healthStatus("ready")(c) }

// liveCheck godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { srv.healthStatus("alive")(c) }
