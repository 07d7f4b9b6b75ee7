package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/constant"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/clients/mailer"
	log "github.com/sirupsen/logrus"
)

// Reserve handles POST /reserve. The reservation is never confirmed here; it
// only becomes a mail to the restaurant. No email leaves on validation errors.
func (c *Controller) Reserve(ctx *gin.Context) {
	var req model.ReserveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.ErrorResponse{OK: false, Error: constant.ReserveMissingFields})
		return
	}
	if !req.Valid() {
		ctx.JSON(http.StatusBadRequest, model.ErrorResponse{OK: false, Error: constant.ReserveMissingFields})
		return
	}

	subject := fmt.Sprintf("[Sukhothai Reservierung] %s %s – %d Pers.", req.Date, req.Time, req.Persons)
	body := mailer.FormatReservation(&req)
	go func() {
		if err := c.mailer.Send(subject, body); err != nil {
			log.Errorf("reservation mail failed: %v", err)
		}
	}()

	ctx.JSON(http.StatusOK, model.ReserveResponse{OK: true, Msg: constant.ReserveAccepted})
}
