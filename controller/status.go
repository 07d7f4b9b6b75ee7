package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/constant"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	log "github.com/sirupsen/logrus"
)

// Healthz handles GET /healthz: static diagnostics, no upstream calls.
func (c *Controller) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, model.HealthResponse{
		OK:       true,
		HasKey:   c.cfg.OpenAIAPIKey != "",
		Origins:  c.cfg.AllowedOrigins,
		FastMode: !c.cfg.Retrieval.Enable,
		Version:  c.version,
	})
}

// Status handles GET /status: one trivial round-trip to the primary model.
func (c *Controller) Status(ctx *gin.Context) {
	reply, err := c.pinger.Ping(ctx.Request.Context())
	if err != nil {
		log.Errorf("status probe failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, model.ErrorResponse{
			OK:    false,
			Error: model.ErrorMessages[model.ErrorStatusProbe],
		})
		return
	}

	ctx.JSON(http.StatusOK, model.StatusResponse{
		OK:    true,
		Model: c.pinger.Model(),
		Reply: reply,
	})
}

// Root handles GET /.
func (c *Controller) Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, constant.BotName+": OK")
}
