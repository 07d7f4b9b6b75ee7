// Package ingest fetches seed content, strips markup, slices it into
// overlapping windows and embeds each window. Results are appended to the
// vector store; nothing is deduplicated or deleted across runs.
package ingest

import (
	"context"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/vectorstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Embedder turns one text window into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type Pipeline struct {
	cfg      *config.Config
	embedder Embedder
	client   *http.Client
}

func NewPipeline(cfg *config.Config, embedder Embedder) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		embedder: embedder,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// stripHTML drops script/style subtrees and collapses the remaining text.
func stripHTML(doc *goquery.Document) string {
	doc.Find("script, style").Remove()
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(doc.Text()), " ")
}

// IngestURL fetches a page and returns one embedded item per window.
func (p *Pipeline) IngestURL(ctx context.Context, url string) ([]vectorstore.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request for %s", url)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", url)
	}

	return p.embedChunks(ctx, stripHTML(doc), url)
}

// IngestFile reads a local seed file. Markdown and plain text are ingested
// as-is after whitespace collapsing; the windows are what get embedded, not
// the formatting.
func (p *Pipeline) IngestFile(ctx context.Context, path string) ([]vectorstore.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	text := whitespaceRE.ReplaceAllString(strings.TrimSpace(string(raw)), " ")
	return p.embedChunks(ctx, text, path)
}

func (p *Pipeline) embedChunks(ctx context.Context, text, source string) ([]vectorstore.Item, error) {
	chunks := Chunk(text, p.cfg.Ingest.ChunkSize, p.cfg.Ingest.ChunkOverlap)
	items := make([]vectorstore.Item, 0, len(chunks))
	for _, c := range chunks {
		vec, err := p.embedder.Embed(ctx, c)
		if err != nil {
			return nil, errors.Wrapf(err, "embed chunk from %s", source)
		}
		items = append(items, vectorstore.Item{
			Text:      c,
			Embedding: vec,
			Meta:      vectorstore.Meta{Source: source},
		})
	}
	log.Infof("ingested %d chunks from %s", len(items), source)
	return items, nil
}

// Run ingests the seed file (if present) and every configured seed URL,
// appending to the store and persisting once at the end. Per-URL failures are
// logged and skipped.
func (p *Pipeline) Run(ctx context.Context) error {
	store, err := vectorstore.Load(p.cfg.Retrieval.StorePath)
	if err != nil {
		return err
	}
	log.Infof("existing store entries: %d", len(store.Items))

	if seed := p.cfg.Ingest.SeedFile; seed != "" {
		if _, err := os.Stat(seed); err == nil {
			items, err := p.IngestFile(ctx, seed)
			if err != nil {
				return err
			}
			store.Items = append(store.Items, items...)
		}
	}

	for _, url := range p.cfg.Ingest.SeedURLs {
		log.Infof("crawling %s", url)
		items, err := p.IngestURL(ctx, url)
		if err != nil {
			log.Warnf("crawl failed for %s: %v", url, err)
			continue
		}
		store.Items = append(store.Items, items...)
	}

	if err := store.Save(p.cfg.Retrieval.StorePath); err != nil {
		return err
	}
	log.Infof("saved %d chunks to %s", len(store.Items), p.cfg.Retrieval.StorePath)
	return nil
}
