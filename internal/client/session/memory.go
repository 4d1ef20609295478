package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the token in process memory. It is not durable; use it
// for tests and throwaway runs. Err, when set, is returned by every call.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	Err   error
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Get(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", unavailable("get", m.Err)
	}
	return m.token, nil
}

func (m *MemoryStore) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return unavailable("set", m.Err)
	}
	m.token = token
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return unavailable("clear", m.Err)
	}
	m.token = ""
	return nil
}

func (m *MemoryStore) Close() error { return nil }
