package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/controller"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/clients/embedding"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/clients/llm_model"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/clients/mailer"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/projectlog"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/router"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/service/chat"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/service/faq"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/service/retrieval"
	"github.com/sirupsen/logrus"
)

func main() {
	defer func() {
		if serviceErr := recover(); serviceErr != nil {
			var buf [4096]byte
			n := runtime.Stack(buf[:], false)
			log.Println("The service exits abnormally, error message:【", serviceErr, "】")
			log.Println("Stack info: ")
			fmt.Printf("==> %s\n", string(buf[:n]))
			os.Exit(1)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	projectlog.Init(cfg)

	engine := llm_model.NewClient(cfg)
	transcriptMailer := mailer.New(cfg)
	matcher := faq.NewMatcher()

	// Retrieval stays dormant unless enabled; the store file is only opened
	// when the flag is on.
	var retriever chat.Retriever
	if cfg.Retrieval.Enable {
		embedder, err := embedding.NewClient(cfg)
		if err != nil {
			logrus.Fatalf("embedding client: %v", err)
		}
		svc, err := retrieval.New(cfg, embedder)
		if err != nil {
			logrus.Fatalf("retrieval: %v", err)
		}
		retriever = svc
	}

	chatService := chat.NewService(cfg, matcher, engine, retriever, transcriptMailer)
	version := "status-" + time.Now().UTC().Format(time.RFC3339)
	ctrl := controller.New(cfg, chatService, transcriptMailer, engine, version)

	go startServer(cfg, ctrl)
	waitStop()
}

func startServer(cfg *config.Config, ctrl *controller.Controller) {
	engine := router.New(cfg, ctrl)
	logrus.Infof("Sukhothai Assist läuft auf %s", cfg.Host)
	if err := http.ListenAndServe(cfg.Host, engine); err != nil {
		logrus.Errorf("Failed to ListenAndServe at %v, err = %v", cfg.Host, err)
		os.Exit(1)
	}
}

func waitStop() {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	sig := <-sc
	log.Printf("exit: signal=<%d>.\n", sig)
	switch sig {
	case syscall.SIGTERM:
		log.Println("exit: bye :-).")
		os.Exit(0)
	default:
		log.Println("exit: bye :-(.")
		os.Exit(1)
	}
}
