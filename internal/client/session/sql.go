package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/usergate/internal/client/migrations"
	"github.com/dmitrijs2005/usergate/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/usergate/internal/filex"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// SQLStore keeps the token as one row of the metadata table.
type SQLStore struct {
	db   *sql.DB
	repo metadata.Repository
	key  string
}

func NewSQLStore(db *sql.DB, repo metadata.Repository, key string) *SQLStore {
	return &SQLStore{db: db, repo: repo, key: key}
}

// RunMigrations applies the embedded goose migrations using the given goose
// dialect ("sqlite3" or "postgres").
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating when needed) the SQLite database at dsn and
// migrates it.
func OpenSQLite(ctx context.Context, dsn string, key string) (*SQLStore, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, unavailable("prepare sqlite path", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, unavailable("open sqlite", err)
	}
	// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, "sqlite3"); err != nil {
		_ = db.Close()
		return nil, unavailable("migrate sqlite", err)
	}
	return NewSQLStore(db, metadata.NewSQLiteRepository(db), key), nil
}

// OpenPostgres connects through the pgx stdlib driver and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string, key string) (*SQLStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, unavailable("open postgres", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, unavailable("ping postgres", err)
	}
	if err := RunMigrations(ctx, db, "postgres"); err != nil {
		_ = db.Close()
		return nil, unavailable("migrate postgres", err)
	}
	return NewSQLStore(db, metadata.NewPostgresRepository(db), key), nil
}

func (s *SQLStore) Get(ctx context.Context) (string, error) {
	token, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return "", unavailable("get", err)
	}
	return token, nil
}

func (s *SQLStore) Set(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, s.key, token); err != nil {
		return unavailable("set", err)
	}
	return nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return unavailable("clear", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
