package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/controller"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/middleware"
)

// New builds the gin engine with logging, CORS and all routes. Dependencies
// come in through the controller; the router holds no state of its own.
func New(cfg *config.Config, ctrl *controller.Controller) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID)
	engine.Use(middleware.Logger)
	engine.Use(corsMiddleware(cfg))

	addBasicRouter(engine, ctrl)
	addApiRouter(engine, ctrl)
	return engine
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type"}

	wildcard := false
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			wildcard = true
		}
	}
	if wildcard || len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(corsCfg)
}

func addBasicRouter(engine *gin.Engine, ctrl *controller.Controller) {
	engine.GET("/", ctrl.Root)
	engine.GET("/healthz", ctrl.Healthz)
	engine.GET("/status", ctrl.Status)
}
