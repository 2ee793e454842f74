package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus-survey/internal/app/models/dto"
	"github.com/yigit/campus-survey/internal/app/services"
	"github.com/yigit/campus-survey/internal/pkg/helpers"
)

// Health response literals
const (
	HealthStatusOK = "OK"
	HealthMessage  = "Campus survey API is running"
)

// SystemController serves liveness endpoints
type SystemController struct {
	healthService services.HealthService
}

// NewSystemController creates a new SystemController
func NewSystemController(healthService services.HealthService) *SystemController {
	return &SystemController{
		healthService: healthService,
	}
}

// Health reports service and database status
// @Summary Health check
// @Description Always 200; database is "Connected" or "Disconnected"
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service status"
// @Router /health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    HealthStatusOK,
		Message:   HealthMessage,
		Timestamp: helpers.NowUTC(),
		Database:  c.healthService.DatabaseStatus(ctx.Request.Context()),
	})
}

// Ping is a bare liveness probe
func (c *SystemController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
