package middleware

import (
	"github.com/notin-app/notin-service/pkg/app"
	"github.com/notin-app/notin-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound renders the unified envelope for unknown routes.
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToResponse(code.ErrorNotFoundAPI)
		c.Abort()
	}
}
