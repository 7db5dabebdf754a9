// Package handler implements the HTTP handlers for the storage API.
// All handlers are methods on Server, which is wired onto the chi router
// in main.go. Splitting the routes there keeps the auth boundary visible
// in one place.
package handler

import (
	"context"

	"github.com/msoren/trip-atlas/internal/domain"
)

// RecordServicer defines the business operations the storage handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type RecordServicer interface {
	ListByCollection(ctx context.Context, collection string) ([]domain.Record, error)
	Upsert(ctx context.Context, collection string, record domain.Record) error
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	records RecordServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(records RecordServicer) *Server {
	return &Server{records: records}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}
