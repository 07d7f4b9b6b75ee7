// Package retrieval is the dormant context-lookup path: embed the query, scan
// the vector store, format the best chunks as a context block. It only runs
// when retrieval.enable is set; the store file is never touched otherwise.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/vectorstore"
)

// Embedder turns the query text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type Service struct {
	store    *vectorstore.Store
	embedder Embedder
	topK     int
}

// New loads the store once at startup. The serving path only reads it; writes
// happen offline via cmd/ingest.
func New(cfg *config.Config, embedder Embedder) (*Service, error) {
	store, err := vectorstore.Load(cfg.Retrieval.StorePath)
	if err != nil {
		return nil, model.NewError(model.ErrorStore, err)
	}
	return &Service{
		store:    store,
		embedder: embedder,
		topK:     cfg.Retrieval.TopK,
	}, nil
}

// Context returns the formatted context block for a query, or "" when the
// store is empty.
func (s *Service) Context(ctx context.Context, query string) (string, error) {
	if len(s.store.Items) == 0 {
		return "", nil
	}

	qvec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return "", err
	}

	hits := s.store.TopK(qvec, s.topK)
	blocks := make([]string, 0, len(hits))
	for _, h := range hits {
		source := h.Meta.Source
		if source == "" {
			source = "unbekannt"
		}
		blocks = append(blocks, fmt.Sprintf("# Quelle: %s\n%s", source, h.Text))
	}
	return strings.Join(blocks, "\n\n"), nil
}
