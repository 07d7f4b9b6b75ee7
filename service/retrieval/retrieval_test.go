package retrieval

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/vectorstore"
)

type fakeEmbedder struct {
	vec   []float64
	calls int
}

func (f *fakeEmbedder) Embed(context.Context, string) ([]float64, error) {
	f.calls++
	return f.vec, nil
}

type RetrievalTest struct {
	suite.Suite
}

func (r *RetrievalTest) newConfig(storePath string) *config.Config {
	cfg := &config.Config{}
	cfg.Retrieval.StorePath = storePath
	cfg.Retrieval.TopK = 2
	return cfg
}

func (r *RetrievalTest) TestMalformedStoreFailsFast() {
	path := filepath.Join(r.T().TempDir(), "embeddings.json")
	r.Require().NoError(os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(r.newConfig(path), &fakeEmbedder{})
	r.Error(err)

	var coded *model.Error
	r.ErrorAs(err, &coded)
	r.Equal(model.ErrorStore, coded.Code)
}

func (r *RetrievalTest) TestMissingStoreMeansEmptyContext() {
	path := filepath.Join(r.T().TempDir(), "embeddings.json")
	embedder := &fakeEmbedder{}

	svc, err := New(r.newConfig(path), embedder)
	r.Require().NoError(err)

	block, err := svc.Context(context.Background(), "Frage")
	r.NoError(err)
	r.Empty(block)
	r.Zero(embedder.calls)
}

func (r *RetrievalTest) TestContextFormatsBestChunksFirst() {
	path := filepath.Join(r.T().TempDir(), "embeddings.json")
	store := &vectorstore.Store{Items: []vectorstore.Item{
		{Text: "So 12:00-14:30", Embedding: []float64{0, 1}, Meta: vectorstore.Meta{}},
		{Text: "Thai-Küche seit 2004", Embedding: []float64{1, 0}, Meta: vectorstore.Meta{Source: "https://example.de/ueber-uns"}},
	}}
	r.Require().NoError(store.Save(path))

	svc, err := New(r.newConfig(path), &fakeEmbedder{vec: []float64{1, 0}})
	r.Require().NoError(err)

	block, err := svc.Context(context.Background(), "Seit wann gibt es euch?")
	r.NoError(err)
	r.Equal("# Quelle: https://example.de/ueber-uns\nThai-Küche seit 2004\n\n# Quelle: unbekannt\nSo 12:00-14:30", block)
}

func TestRetrieval(t *testing.T) {
	suite.Run(t, new(RetrievalTest))
}
