// Package api_router provides the HTTP API route handlers.
package api_router

import (
	"context"

	"github.com/notin-app/notin-service/internal/app"
	"github.com/notin-app/notin-service/internal/middleware"

	"go.uber.org/zap"
)

// Handler base handler embedding the App Container. Every API handler
// embeds it for dependency injection.
type Handler struct {
	App *app.App
}

func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError logs a handler failure with the request's trace id.
func (h *Handler) logError(ctx context.Context, op string, err error) {
	h.App.Logger().Error(op+" failed",
		zap.String("traceId", middleware.GetTraceID(ctx)),
		zap.Error(err),
	)
}
