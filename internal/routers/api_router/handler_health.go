package api_router

import (
	"time"

	"github.com/notin-app/notin-service/internal/app"
	pkgapp "github.com/notin-app/notin-service/pkg/app"
	"github.com/notin-app/notin-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// HealthHandler health check handler.
type HealthHandler struct {
	*Handler
}

func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse health check payload.
type HealthResponse struct {
	Status   string  `json:"status"`
	Version  string  `json:"version"`
	Uptime   float64 `json:"uptime"`
	Database string  `json:"database"`
}

// Check reports service health including database connectivity.
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  h.App.Version().Version,
		Uptime:   time.Since(h.App.StartTime).Seconds(),
		Database: "connected",
	}

	if err := h.App.DB.WithContext(c.Request.Context()).Exec("SELECT 1").Error; err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
