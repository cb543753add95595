package ingest

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"contract-rag/internal/chunker"
	"contract-rag/internal/models"
)

// Corpus is the write side of the embedding store.
type Corpus interface {
	Count(ctx context.Context) (int, error)
	ReplaceCorpus(ctx context.Context, chunks []models.EmbeddedChunk) error
}

// Embedder batches chunks into embedded chunks.
type Embedder interface {
	Embed(ctx context.Context, chunks []models.Chunk, batchSize int) []models.EmbeddedChunk
}

// Ingestor runs the chunk -> embed -> replace pipeline for one document.
type Ingestor struct {
	corpus    Corpus
	embedder  Embedder
	chunker   *chunker.Chunker
	batchSize int
}

func New(corpus Corpus, embedder Embedder, ck *chunker.Chunker, batchSize int) *Ingestor {
	return &Ingestor{corpus: corpus, embedder: embedder, chunker: ck, batchSize: batchSize}
}

// Ingest chunks and embeds pages and installs them as the active corpus.
// Without force it only embeds when the corpus is empty and new chunks
// exist; force replaces the corpus wholesale (the re-upload path). An
// empty result or a storage failure is a hard error, because an empty
// corpus makes every subsequent extraction meaningless.
func (ing *Ingestor) Ingest(ctx context.Context, pages []models.Page, force bool) error {
	chunks := ing.chunker.Chunk(pages)
	if len(chunks) == 0 {
		return errors.New("ingest: document produced no chunks")
	}

	if !force {
		count, err := ing.corpus.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			log.Info().Int("existing", count).Msg("Corpus already populated, skipping embed")
			return nil
		}
	}

	embedded := ing.embedder.Embed(ctx, chunks, ing.batchSize)
	if len(embedded) == 0 {
		return errors.New("ingest: embedding produced no rows")
	}
	if len(embedded) < len(chunks) {
		log.Warn().Int("expected", len(chunks)).Int("actual", len(embedded)).
			Msg("Ingesting with dropped chunks")
	}

	return ing.corpus.ReplaceCorpus(ctx, embedded)
}
