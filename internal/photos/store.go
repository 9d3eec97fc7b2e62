package photos

import (
	"context"
	"fmt"
	"time"

	"elemex/internal/db"
)

// Status records the outcome of one availability check.
type Status struct {
	Number    int       `json:"number"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Available bool      `json:"available"`
	CheckedAt time.Time `json:"checked_at"`
}

// Store persists photo availability checks.
type Store struct {
	db *db.DB
}

// NewStore creates a photo status store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Record upserts the check result for one element.
func (s *Store) Record(ctx context.Context, st Status) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO photo_status (number, name, url, available, checked_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(number) DO UPDATE SET name=excluded.name, url=excluded.url, available=excluded.available, checked_at=excluded.checked_at`,
		st.Number, st.Name, st.URL, boolToInt(st.Available), st.CheckedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording photo status: %w", err)
	}
	return nil
}

// Get returns the recorded status for an element number.
func (s *Store) Get(ctx context.Context, number int) (*Status, error) {
	st := &Status{}
	var available int
	err := s.db.QueryRowContext(ctx,
		`SELECT number, name, url, available, checked_at FROM photo_status WHERE number = ?`, number,
	).Scan(&st.Number, &st.Name, &st.URL, &available, &st.CheckedAt)
	if err != nil {
		return nil, fmt.Errorf("getting photo status: %w", err)
	}
	st.Available = available != 0
	return st, nil
}

// CountAvailable returns how many elements have a confirmed photo.
func (s *Store) CountAvailable(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM photo_status WHERE available = 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting photo status: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
