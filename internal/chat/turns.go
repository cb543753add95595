package chat

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"contract-rag/internal/models"
)

// TurnRecord is one stored conversation message. A session's running
// summary is the context_summary of its most recent turn.
type TurnRecord struct {
	bun.BaseModel  `bun:"table:conversations,alias:c"`
	ID             int64     `bun:"id,pk,autoincrement"`
	SessionID      string    `bun:"session_id,notnull"`
	Message        string    `bun:"message,notnull"`
	SentBy         string    `bun:"sent_by,notnull"`
	ContextSummary string    `bun:"context_summary"`
	Timestamp      time.Time `bun:"timestamp,nullzero,notnull,default:current_timestamp"`
}

// TurnStore persists conversation turns, append-only per session.
// Sessions are isolated by session_id and never share turns.
type TurnStore struct {
	db *bun.DB
}

func NewTurnStore(ctx context.Context, db *bun.DB) (*TurnStore, error) {
	if _, err := db.NewCreateTable().Model((*TurnRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return nil, &models.StorageError{Op: "init conversations", Err: err}
	}
	return &TurnStore{db: db}, nil
}

// LatestSummary returns the most recent turn's context summary for the
// session, or the empty string when the session has no turns yet.
func (s *TurnStore) LatestSummary(ctx context.Context, sessionID string) (string, error) {
	var record TurnRecord
	err := s.db.NewSelect().Model(&record).
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", &models.StorageError{Op: "load summary", Err: err}
	}
	return record.ContextSummary, nil
}

// Append stores the user and bot messages of one completed turn, both
// tagged with the same updated summary.
func (s *TurnStore) Append(ctx context.Context, sessionID, userMessage, botMessage, summary string) error {
	records := []TurnRecord{
		{SessionID: sessionID, Message: userMessage, SentBy: models.SentByUser, ContextSummary: summary},
		{SessionID: sessionID, Message: botMessage, SentBy: models.SentByBot, ContextSummary: summary},
	}
	if _, err := s.db.NewInsert().Model(&records).Exec(ctx); err != nil {
		return &models.StorageError{Op: "append turns", Err: err}
	}
	return nil
}

// History returns the session's turns in insertion order.
func (s *TurnStore) History(ctx context.Context, sessionID string) ([]TurnRecord, error) {
	var records []TurnRecord
	err := s.db.NewSelect().Model(&records).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, &models.StorageError{Op: "load history", Err: err}
	}
	return records, nil
}

// Purge deletes every turn stored under the session id.
func (s *TurnStore) Purge(ctx context.Context, sessionID string) error {
	if _, err := s.db.NewDelete().Model((*TurnRecord)(nil)).
		Where("session_id = ?", sessionID).Exec(ctx); err != nil {
		return &models.StorageError{Op: "purge session", Err: err}
	}
	return nil
}
