// Command ingest is the offline ingestion tool: it crawls the configured seed
// file and URLs, embeds the chunks and appends them to the vector store file.
// Run it before enabling retrieval; never run two copies at once.
package main

import (
	"context"
	"log"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/clients/embedding"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/ingest"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/projectlog"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	projectlog.Init(cfg)

	embedder, err := embedding.NewClient(cfg)
	if err != nil {
		logrus.Fatalf("embedding client: %v", err)
	}

	pipeline := ingest.NewPipeline(cfg, embedder)
	if err := pipeline.Run(context.Background()); err != nil {
		logrus.Fatalf("ingest: %v", err)
	}
}
