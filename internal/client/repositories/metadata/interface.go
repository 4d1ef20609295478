// Package metadata is a small durable key/value repository stored in the
// "metadata" table. The session store keeps the session token here.
package metadata

import (
	"context"
)

// Repository reads and writes named string values.
//
// Get returns ("", nil) when the key is absent. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
