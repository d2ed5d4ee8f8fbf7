package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kotobadev/verb-trainer-bot/internal/infra/postgres"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordRepository stores opaque per-user JSON records (settings, stats,
// high score). The payload is never interpreted here; decoding and
// defaulting is the profile service's job.
//
// Schema:
//
//	CREATE TABLE user_records (
//	    user_id    BIGINT      NOT NULL,
//	    record_key TEXT        NOT NULL,
//	    payload    JSONB       NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    PRIMARY KEY (user_id, record_key)
//	);
type RecordRepository struct {
	db postgres.DBTX
}

// NewRecordRepository creates a new RecordRepository with the provided
// database pool.
func NewRecordRepository(db postgres.DBTX) *RecordRepository {
	return &RecordRepository{db: db}
}

// Get returns the raw payload for a user's record.
func (r *RecordRepository) Get(ctx context.Context, userID int64, key string) ([]byte, error) {
	query := `
		SELECT payload
		FROM user_records
		WHERE user_id = $1 AND record_key = $2
	`

	var payload []byte
	err := r.db.QueryRow(ctx, query, userID, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}

	return payload, nil
}

// Set writes the payload for a user's record, creating it on first write.
func (r *RecordRepository) Set(ctx context.Context, userID int64, key string, payload []byte) error {
	query := `
		INSERT INTO user_records (user_id, record_key, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, record_key) DO UPDATE
		SET payload = EXCLUDED.payload,
		    updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, userID, key, payload); err != nil {
		return fmt.Errorf("set record: %w", err)
	}

	return nil
}
