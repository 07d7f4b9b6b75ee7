package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	log "github.com/sirupsen/logrus"
)

// Chat handles POST /chat.
func (c *Controller) Chat(ctx *gin.Context) {
	var req model.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.ErrorResponse{OK: false, Error: err.Error()})
		return
	}

	res, svcErr := c.chat.Answer(ctx.Request.Context(), req.Message, req.History)
	if svcErr != nil {
		status := http.StatusInternalServerError
		if svcErr.Code == model.ErrorInvalidRequest {
			status = http.StatusBadRequest
		}
		log.Errorf("chat error: %v", svcErr)
		ctx.JSON(status, model.ErrorResponse{OK: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, model.ChatResponse{
		OK:       true,
		Answer:   res.Answer,
		ThreadID: res.ThreadID,
	})
}
