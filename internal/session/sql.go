package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"protrain-backend-go/internal/models"
)

// SQLStore keeps the record in the session_kv table created by
// internal/migrations.
type SQLStore struct {
	db  *sqlx.DB
	key string
}

func NewSQLStore(db *sqlx.DB, key string) *SQLStore {
	if key == "" {
		key = DefaultKey
	}
	return &SQLStore{db: db, key: key}
}

func (s *SQLStore) Load(ctx context.Context) (*models.User, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, `SELECT value FROM session_kv WHERE key = $1`, s.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode([]byte(raw))
}

func (s *SQLStore) Save(ctx context.Context, user models.User) error {
	raw, err := encode(user)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO session_kv (key, value, updated_at)
VALUES ($1,$2,$3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`, s.key, string(raw), time.Now().UTC())
	return err
}

func (s *SQLStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_kv WHERE key = $1`, s.key)
	return err
}
