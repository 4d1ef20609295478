package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usergate/internal/client/config"
)

// Backend names accepted in config.SessionBackend.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
	BackendMemory   = "memory"
)

// Open returns the Store selected by cfg.SessionBackend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.SessionBackend {
	case BackendSQLite, "":
		return OpenSQLite(ctx, cfg.SessionDSN, cfg.SessionKey)
	case BackendPostgres:
		return OpenPostgres(ctx, cfg.SessionDSN, cfg.SessionKey)
	case BackendS3:
		return OpenS3(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.S3Prefix,
		}, cfg.SessionKey)
	case BackendMemory:
		return NewMemoryStore(""), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
