// Package results keeps the history of extraction runs. The current
// result for a field is simply the latest run's row; older runs stay
// queryable by run id.
package results

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"contract-rag/internal/models"
)

type RunRecord struct {
	bun.BaseModel `bun:"table:extraction_runs,alias:er"`
	ID            int64     `bun:"id,pk,autoincrement"`
	DocType       string    `bun:"doc_type,notnull"`
	FileName      string    `bun:"file_name,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

type FieldRecord struct {
	bun.BaseModel `bun:"table:extraction_fields,alias:ef"`
	ID            int64  `bun:"id,pk,autoincrement"`
	RunID         int64  `bun:"run_id,notnull"`
	Field         string `bun:"field,notnull"`
	Value         []byte `bun:"value"`
	PageNumber    string `bun:"page_number"`
	Confidence    int    `bun:"confidence"`
	Reasoning     string `bun:"reasoning"`
	Proof         []byte `bun:"proof"`
	Degraded      bool   `bun:"degraded"`
}

type Store struct {
	db *bun.DB
}

func New(ctx context.Context, db *bun.DB) (*Store, error) {
	for _, model := range []any{(*RunRecord)(nil), (*FieldRecord)(nil)} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return nil, &models.StorageError{Op: "init results", Err: err}
		}
	}
	return &Store{db: db}, nil
}

// StoreRun persists one extraction run with a detailed row per field and
// returns the run id.
func (s *Store) StoreRun(ctx context.Context, docType models.DocType, fileName string, outcomes []models.FieldOutcome) (int64, error) {
	run := RunRecord{DocType: string(docType), FileName: fileName}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&run).Exec(ctx); err != nil {
			return err
		}
		records := make([]FieldRecord, len(outcomes))
		for i, outcome := range outcomes {
			records[i] = FieldRecord{
				RunID:      run.ID,
				Field:      outcome.Field,
				Value:      outcome.Result.FieldValue,
				PageNumber: outcome.Result.PageNumber,
				Confidence: int(outcome.Result.Confidence),
				Reasoning:  outcome.Result.Reasoning,
				Proof:      outcome.Result.Proof,
				Degraded:   outcome.Degraded,
			}
		}
		if len(records) == 0 {
			return nil
		}
		_, err := tx.NewInsert().Model(&records).Exec(ctx)
		return err
	})
	if err != nil {
		return 0, &models.StorageError{Op: "store run", Err: err}
	}

	log.Info().Int64("run_id", run.ID).Str("doc_type", string(docType)).
		Str("file", fileName).Int("fields", len(outcomes)).Msg("Stored extraction run")
	return run.ID, nil
}

// Latest returns the field rows of the most recent run for a document
// type, or an empty slice when no run exists yet.
func (s *Store) Latest(ctx context.Context, docType models.DocType) ([]FieldRecord, error) {
	var run RunRecord
	err := s.db.NewSelect().Model(&run).
		Where("doc_type = ?", string(docType)).
		Order("id DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &models.StorageError{Op: "latest run", Err: err}
	}

	var records []FieldRecord
	err = s.db.NewSelect().Model(&records).
		Where("run_id = ?", run.ID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, &models.StorageError{Op: "latest fields", Err: err}
	}
	return records, nil
}

// History lists all runs for a document type, newest first.
func (s *Store) History(ctx context.Context, docType models.DocType) ([]RunRecord, error) {
	var runs []RunRecord
	err := s.db.NewSelect().Model(&runs).
		Where("doc_type = ?", string(docType)).
		Order("id DESC").
		Scan(ctx)
	if err != nil {
		return nil, &models.StorageError{Op: "run history", Err: err}
	}
	return runs, nil
}
