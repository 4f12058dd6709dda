package store

import (
	"context"
	"sync"

	"github.com/alkasm1/pixlock/internal/derive"
)

// Memory is an in-process store for tests and embedding. The zero
// value is ready to use.
type Memory struct {
	mu      sync.Mutex
	secret  derive.Secret
	present bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Write(ctx context.Context, secret derive.Secret) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.secret = secret
	m.present = true
	return nil
}

func (m *Memory) Read(ctx context.Context) (derive.Secret, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.secret, m.present, nil
}

func (m *Memory) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.secret = ""
	m.present = false
	return nil
}
