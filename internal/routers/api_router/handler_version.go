package api_router

import (
	"github.com/notin-app/notin-service/internal/app"
	pkgapp "github.com/notin-app/notin-service/pkg/app"
	"github.com/notin-app/notin-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// VersionHandler version endpoint handler.
type VersionHandler struct {
	*Handler
}

func NewVersionHandler(a *app.App) *VersionHandler {
	return &VersionHandler{Handler: NewHandler(a)}
}

// ServerVersion returns build information.
func (h *VersionHandler) ServerVersion(c *gin.Context) {
	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(h.App.Version()))
}
