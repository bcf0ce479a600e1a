package http

import (
	"net/http"

	"publisher-gateway/infrastructure/utils"

	"github.com/gin-gonic/gin"
)

const serviceName = "Facebook API Backend"

type IHealthHandler interface {
	Home(c *gin.Context)
	Health(c *gin.Context)
}

type HealthHandler struct{}

func NewHealthHandler() IHealthHandler {
	return &HealthHandler{}
}

// Home returns the service banner
func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": serviceName, "status": "running"})
}

// Health returns OK with the current UTC time
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "time": utils.FormatISOTime(utils.GetCurrentTime())})
}
