package controller

import (
	"context"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/service/chat"
)

// ModelPinger confirms the primary model is reachable.
type ModelPinger interface {
	Ping(ctx context.Context) (string, error)
	Model() string
}

// Controller holds every dependency the HTTP handlers need. Nothing is looked
// up ambiently.
type Controller struct {
	cfg     *config.Config
	chat    *chat.Service
	mailer  chat.Mailer
	pinger  ModelPinger
	version string
}

func New(cfg *config.Config, chatService *chat.Service, mailer chat.Mailer, pinger ModelPinger, version string) *Controller {
	return &Controller{
		cfg:     cfg,
		chat:    chatService,
		mailer:  mailer,
		pinger:  pinger,
		version: version,
	}
}
