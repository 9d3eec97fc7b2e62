package elements

import (
	"context"
	"fmt"
	"time"

	"elemex/internal/db"
)

// Store persists the most recent upstream payload so restarts within the
// cache window do not refetch.
type Store struct {
	db *db.DB
}

// NewStore creates a dataset cache store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Save upserts the cached payload. There is always at most one row.
func (s *Store) Save(ctx context.Context, payload []byte, sourceURL string, fetchedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dataset_cache (id, payload, source_url, fetched_at)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload=excluded.payload, source_url=excluded.source_url, fetched_at=excluded.fetched_at`,
		payload, sourceURL, fetchedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving dataset cache: %w", err)
	}
	return nil
}

// Load returns the cached payload and its fetch time, or sql.ErrNoRows
// when nothing has been cached yet.
func (s *Store) Load(ctx context.Context) ([]byte, time.Time, error) {
	var payload []byte
	var fetchedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM dataset_cache WHERE id = 1`,
	).Scan(&payload, &fetchedAt)
	if err != nil {
		return nil, time.Time{}, err
	}
	return payload, fetchedAt, nil
}
