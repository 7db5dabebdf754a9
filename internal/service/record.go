// Package service implements business logic for the storage API.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/repo"
)

// RecordService validates and routes record reads and writes.
// The service is deliberately thin: records are opaque to the storage side,
// so validation stops at the addressing fields (collection and key).
type RecordService struct {
	records repo.RecordRepo
}

// NewRecordService constructs a RecordService backed by the provided repo.
func NewRecordService(records repo.RecordRepo) *RecordService {
	return &RecordService{records: records}
}

// ListByCollection returns all records in the named collection.
// Always returns a non-nil slice so the handler can encode an empty "data"
// array rather than null — clients reject a null data field.
func (s *RecordService) ListByCollection(ctx context.Context, collection string) ([]domain.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, fmt.Errorf("%w: collection is required", domain.ErrValidation)
	}

	records, err := s.records.ListByCollection(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("service.RecordService.ListByCollection: %w", err)
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// Upsert creates or replaces one record. The "collection" and "key"
// addressing fields are stripped from the stored bag — they live in their
// own columns and are re-merged on read.
func (s *RecordService) Upsert(ctx context.Context, collection string, record domain.Record) error {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return fmt.Errorf("%w: collection is required", domain.ErrValidation)
	}
	key := strings.TrimSpace(record.Key())
	if key == "" {
		return fmt.Errorf("%w: key is required", domain.ErrValidation)
	}

	fields := make(domain.Record, len(record))
	for k, v := range record {
		if k == "key" || k == "collection" {
			continue
		}
		fields[k] = v
	}

	if err := s.records.Upsert(ctx, collection, key, fields); err != nil {
		return fmt.Errorf("service.RecordService.Upsert: %w", err)
	}
	return nil
}
