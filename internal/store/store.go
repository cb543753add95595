package store

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	"contract-rag/internal/models"
)

// ChunkRecord is the persisted form of an embedded chunk. Embedding holds
// the little-endian float32 blob produced by EncodeVector.
type ChunkRecord struct {
	bun.BaseModel `bun:"table:document_chunks,alias:dc"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Chunk         string `bun:"chunk,notnull"`
	PageNumber    int    `bun:"page_number,notnull"`
	Embedding     []byte `bun:"embedding"`
}

// Store owns the chunk corpus for exactly one active document. Replacing
// the corpus is serialized against in-flight reads so a query never sees a
// half-replaced corpus.
type Store struct {
	db *bun.DB
	mu sync.RWMutex
}

func Connect(dsn string, debug bool) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db, nil
}

func New(ctx context.Context, db *bun.DB) (*Store, error) {
	if _, err := db.NewCreateTable().Model((*ChunkRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return nil, &models.StorageError{Op: "init corpus", Err: err}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// ReplaceCorpus atomically discards the prior corpus and installs the new
// one. The delete and bulk insert share one transaction, so a failed write
// never leaves a mixed old/new corpus behind.
func (s *Store) ReplaceCorpus(ctx context.Context, chunks []models.EmbeddedChunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]ChunkRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = ChunkRecord{
			Chunk:      chunk.Text,
			PageNumber: chunk.PageNumber,
			Embedding:  EncodeVector(chunk.Embedding),
		}
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*ChunkRecord)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		_, err := tx.NewInsert().Model(&records).Exec(ctx)
		return err
	})
	if err != nil {
		return &models.StorageError{Op: "replace corpus", Err: err}
	}

	log.Info().Int("chunks", len(records)).Msg("Replaced corpus")
	return nil
}

// Count reports the current corpus size.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, err := s.db.NewSelect().Model((*ChunkRecord)(nil)).Count(ctx)
	if err != nil {
		return 0, &models.StorageError{Op: "count corpus", Err: err}
	}
	return count, nil
}

// TopK ranks every stored chunk by cosine similarity against the query
// vector and returns the k best, descending. Ties keep insertion order.
// An empty corpus yields an empty result, and k beyond the corpus size
// returns the whole corpus.
func (s *Store) TopK(ctx context.Context, query []float32, k int) ([]models.RetrievedChunk, error) {
	if k <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []ChunkRecord
	if err := s.db.NewSelect().Model(&records).Order("id ASC").Scan(ctx); err != nil {
		return nil, &models.StorageError{Op: "scan corpus", Err: err}
	}

	scored := make([]models.RetrievedChunk, 0, len(records))
	for _, record := range records {
		embedding, err := DecodeVector(record.Embedding)
		if err != nil {
			log.Warn().Err(err).Int64("id", record.ID).Msg("Skipping undecodable embedding")
			continue
		}
		scored = append(scored, models.RetrievedChunk{
			Chunk: models.Chunk{PageNumber: record.PageNumber, Text: record.Chunk},
			Score: cosineSimilarity(query, embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}
