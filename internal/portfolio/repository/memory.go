package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
)

// MemoryRepo keeps the serialized document in memory. Used by unit tests.
// Holding the blob as bytes (not a shared pointer) gives it the same copy
// semantics as the file backend.
type MemoryRepo struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Load(ctx context.Context) (*portfolio.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.blob == nil {
		return nil, ErrNotFound
	}
	var doc portfolio.Document
	if err := json.Unmarshal(m.blob, &doc); err != nil {
		return nil, fmt.Errorf("parse stored document: %w", err)
	}
	return &doc, nil
}

func (m *MemoryRepo) Save(ctx context.Context, doc *portfolio.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	m.blob = raw
	return nil
}
