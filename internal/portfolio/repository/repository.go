package repository

import (
	"context"
	"errors"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
)

var (
	// ErrNotFound is returned by Load when no document has been persisted yet.
	ErrNotFound = errors.New("no stored document")
	// ErrWriteFailed wraps any failure of the backing medium during Save.
	// A Save that returns it made no durable change.
	ErrWriteFailed = errors.New("store write failed")
)

// Repository persists the whole portfolio document as a single serialized
// blob: it is read in full and written in full, never incrementally.
type Repository interface {
	Load(ctx context.Context) (*portfolio.Document, error)
	Save(ctx context.Context, doc *portfolio.Document) error
}
