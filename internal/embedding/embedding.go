package embedding

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"contract-rag/internal/config"
	"contract-rag/internal/models"
)

// NewEmbedder builds the embedding client both the corpus and the query
// side share. Cross-model similarity is meaningless, so every caller must
// embed through the instance built from the one OpenAIConfig.
func NewEmbedder(cfg *config.OpenAIConfig) (*embeddings.EmbedderImpl, error) {
	opts := []openai.Option{
		openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
		openai.WithEmbeddingModel(cfg.EmbeddingModel),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return embeddings.NewEmbedder(llm)
}

// Generator turns chunks into embedded chunks in contiguous batches, one
// service call per batch.
type Generator struct {
	embedder embeddings.Embedder
}

func NewGenerator(embedder embeddings.Embedder) *Generator {
	return &Generator{embedder: embedder}
}

// Embed partitions chunks into batches of batchSize and embeds each batch
// with a single call, mapping response vector i to input chunk i by
// position. A failed or miscounted batch is logged and contributes zero
// rows; remaining batches still run, so the output may be shorter than
// the input and callers must tolerate that.
func (g *Generator) Embed(ctx context.Context, chunks []models.Chunk, batchSize int) []models.EmbeddedChunk {
	if batchSize <= 0 {
		batchSize = 1
	}

	embedded := make([]models.EmbeddedChunk, 0, len(chunks))
	for start := 0; start < len(chunks); start += batchSize {
		end := start + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		rows, err := g.embedBatch(ctx, batch)
		if err != nil {
			log.Error().Err(err).Int("batch_start", start).Int("batch_size", len(batch)).
				Msg("Error embedding batch")
			continue
		}
		embedded = append(embedded, rows...)
	}

	if len(embedded) != len(chunks) {
		log.Warn().Int("expected", len(chunks)).Int("actual", len(embedded)).
			Msg("Embedding dropped chunks")
	} else {
		log.Debug().Int("chunks", len(embedded)).Msg("Generated embeddings")
	}
	return embedded
}

func (g *Generator) embedBatch(ctx context.Context, batch []models.Chunk) ([]models.EmbeddedChunk, error) {
	texts := make([]string, len(batch))
	for i, chunk := range batch {
		texts[i] = chunk.Text
	}

	vectors, err := g.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(batch) {
		return nil, &models.FormatError{
			Op:     "embed",
			Detail: "vector count does not match batch size",
		}
	}

	rows := make([]models.EmbeddedChunk, len(batch))
	for i, chunk := range batch {
		rows[i] = models.EmbeddedChunk{Chunk: chunk, Embedding: vectors[i]}
	}
	return rows, nil
}

// EmbedQuery embeds a single retrieval query with the corpus model.
func (g *Generator) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	return g.embedder.EmbedQuery(ctx, query)
}
