// Package routers builds the gin engine and wires middleware and
// handlers.
package routers

import (
	"github.com/notin-app/notin-service/internal/app"
	"github.com/notin-app/notin-service/internal/middleware"
	"github.com/notin-app/notin-service/internal/routers/api_router"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo(app.Name, appContainer.Version().Version))
		if cfg.Tracer.Enabled {
			api.Use(middleware.Tracer(cfg.Tracer.Header))
		}
		api.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
		api.Use(middleware.Cors())
		api.Use(middleware.Lang(uni))
		api.Use(middleware.AccessLog(appContainer.Logger()))
		api.Use(middleware.Recovery(appContainer.Logger()))

		userHandler := api_router.NewUserHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)

		api.GET("/health", healthHandler.Check)
		api.GET("/version", versionHandler.ServerVersion)

		auth := api.Group("", middleware.UserAuthToken(cfg.Security.AuthTokenKey))
		auth.GET("/user/info", userHandler.UserInfo)
		auth.POST("/user/change_password", userHandler.UserChangePassword)

		auth.POST("/notes/generate", noteHandler.Generate)
		auth.GET("/notes/collect", noteHandler.Collect)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
