package profiler

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool and pgx.Tx used by PostgresStorage.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	createRequestQuery = `INSERT INTO profiling_requests (target_name, word_count)
VALUES ($1, $2)
RETURNING id, target_name, word_count, created_at`

	historyQuery = `SELECT id, target_name, word_count, created_at
FROM profiling_requests
ORDER BY created_at DESC, id DESC
LIMIT $1`
)

// PostgresStorage keeps the history in the profiling_requests table.
type PostgresStorage struct {
	db DBTX
}

// NewPostgresStorage expects the internal/db migrations to be applied.
func NewPostgresStorage(db DBTX) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) CreateRequest(ctx context.Context, targetName string, wordCount int) (Record, error) {
	var rec Record
	err := s.db.QueryRow(ctx, createRequestQuery, targetName, wordCount).
		Scan(&rec.ID, &rec.TargetName, &rec.WordCount, &rec.CreatedAt)
	if err != nil {
		return Record{}, errors.Join(ErrCreateRequest, err)
	}
	return rec, nil
}

func (s *PostgresStorage) History(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.Query(ctx, historyQuery, limit)
	if err != nil {
		return nil, errors.Join(ErrListHistory, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[Record])
	if err != nil {
		return nil, errors.Join(ErrListHistory, err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
