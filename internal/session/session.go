// Package session persists the logged-in user as a single JSON record
// under one key.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"protrain-backend-go/internal/models"
)

const DefaultKey = "protrain_user"

// Store keeps at most one user. Load returns (nil, nil) when nothing is
// saved.
type Store interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

func encode(user models.User) ([]byte, error) {
	return json.Marshal(user)
}

var ErrCorrupt = errors.New("session record is corrupt")

// decode rejects anything that is not a usable session user.
func decode(raw []byte) (*models.User, error) {
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, ErrCorrupt
	}
	if user.ID == "" || !user.Role.Valid() {
		return nil, ErrCorrupt
	}
	return &user, nil
}

// MemoryStore is a Store that lives as long as the process.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raw == nil {
		return nil, nil
	}
	return decode(m.raw)
}

func (m *MemoryStore) Save(_ context.Context, user models.User) error {
	raw, err := encode(user)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.raw = nil
	m.mu.Unlock()
	return nil
}
