// Package session persists the single opaque session token.
//
// A Store reads and writes exactly one named entry in durable storage.
// Backends: SQLite (default), PostgreSQL, S3-compatible object storage and
// an in-memory store for tests. Every backend failure is reported wrapped in
// common.ErrStorageUnavailable; callers treat that as "unauthenticated".
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usergate/internal/common"
)

// Store is the capability the auth gate needs from durable storage.
//
// Get returns "" when no token is stored. Set does not validate the token.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Close() error
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStorageUnavailable, op, err)
}
