// Package repo contains all database access logic for the storage API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/msoren/trip-atlas/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RecordRepo defines the persistence operations for storage records.
// Records are opaque JSON bags identified by (collection, key); the repo
// never inspects the fields beyond serializing them.
type RecordRepo interface {
	// ListByCollection returns every record in the collection, each with
	// its key merged back into the field bag, ordered by key for stable
	// responses.
	ListByCollection(ctx context.Context, collection string) ([]domain.Record, error)

	// Upsert inserts the record or replaces its fields when the
	// (collection, key) pair already exists.
	Upsert(ctx context.Context, collection, key string, fields domain.Record) error
}

// pgRecordRepo is the Postgres implementation of RecordRepo.
type pgRecordRepo struct {
	db db
}

// NewRecordRepo constructs a RecordRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRecordRepo(db db) RecordRepo {
	return &pgRecordRepo{db: db}
}

func (r *pgRecordRepo) ListByCollection(ctx context.Context, collection string) ([]domain.Record, error) {
	const q = `
		SELECT key, fields
		FROM records
		WHERE collection = @collection
		ORDER BY key`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"collection": collection})
	if err != nil {
		return nil, fmt.Errorf("repo.RecordRepo.ListByCollection: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("repo.RecordRepo.ListByCollection: scan: %w", err)
		}

		rec := domain.Record{}
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("repo.RecordRepo.ListByCollection: decode fields for %q: %w", key, err)
		}
		rec["key"] = key
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RecordRepo.ListByCollection: %w", err)
	}
	return records, nil
}

func (r *pgRecordRepo) Upsert(ctx context.Context, collection, key string, fields domain.Record) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("repo.RecordRepo.Upsert: encode fields: %w", err)
	}

	const q = `
		INSERT INTO records (collection, key, fields)
		VALUES (@collection, @key, @fields)
		ON CONFLICT (collection, key)
		DO UPDATE SET fields = EXCLUDED.fields, updated_at = now()`

	_, err = r.db.Exec(ctx, q, pgx.NamedArgs{
		"collection": collection,
		"key":        key,
		"fields":     raw,
	})
	if err != nil {
		return fmt.Errorf("repo.RecordRepo.Upsert: %w", err)
	}
	return nil
}
