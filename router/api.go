package router

import (
	"github.com/gin-gonic/gin"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/controller"
)

func addApiRouter(engine *gin.Engine, ctrl *controller.Controller) {
	// The widget only ever speaks these two endpoints.
	engine.POST("/chat", ctrl.Chat)
	engine.POST("/reserve", ctrl.Reserve)
}
