package middleware

import (
	"github.com/notin-app/notin-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppInfo stores application identity and access host in the request
// context.
func AppInfo(name, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))

		c.Next()
	}
}
