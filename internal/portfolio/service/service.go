package service

import (
	"context"
	"sync"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio/repository"
	"github.com/noirfolio/noirfolio/backend/go-services/pkg/logger"
	"github.com/noirfolio/noirfolio/backend/go-services/pkg/metrics"
)

// Store owns the persisted document and is the only writer of it. Every
// mutation is a full read-modify-write cycle over the repository blob,
// serialized by a single-writer mutex so that two in-process requests cannot
// interleave their read and write phases and lose an update. Writers in other
// processes sharing the same file remain last-write-wins on the whole
// document.
type Store struct {
	mu   sync.Mutex
	repo repository.Repository
}

func New(repo repository.Repository) *Store {
	return &Store{repo: repo}
}

// Load returns the current document. On first use it persists and returns
// the seed document; an unreadable or corrupt store degrades to the seed (and
// logs) rather than taking content delivery down. The returned document never
// has a nil content, messages or bookings field.
func (s *Store) Load(ctx context.Context) *portfolio.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) *portfolio.Document {
	doc, err := s.repo.Load(ctx)
	switch {
	case err == repository.ErrNotFound:
		doc = portfolio.NewDocument()
		if serr := s.repo.Save(ctx, doc); serr != nil {
			metrics.StoreWriteFailures.Inc()
			logger.Errorf("store: failed to persist seed document: %v", serr)
		}
		return doc
	case err != nil:
		logger.Errorf("store: read failed, serving seed document: %v", err)
		return portfolio.NewDocument()
	}

	// read-repair: absent collections become empty, nothing else is touched
	if doc.PortfolioContent == nil {
		doc.PortfolioContent = portfolio.Content{}
	}
	if doc.Messages == nil {
		doc.Messages = []portfolio.Message{}
	}
	if doc.Bookings == nil {
		doc.Bookings = []portfolio.Booking{}
	}
	return doc
}

func (s *Store) saveLocked(ctx context.Context, doc *portfolio.Document) error {
	if err := s.repo.Save(ctx, doc); err != nil {
		metrics.StoreWriteFailures.Inc()
		return err
	}
	return nil
}

// Content returns the public portfolio content.
func (s *Store) Content(ctx context.Context) portfolio.Content {
	return s.Load(ctx).PortfolioContent
}

// ReplaceContent swaps the portfolio content wholesale. The caller submits
// the complete object; there are no partial-field patch semantics.
func (s *Store) ReplaceContent(ctx context.Context, content portfolio.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.loadLocked(ctx)
	doc.PortfolioContent = content
	return s.saveLocked(ctx, doc)
}

// AppendMessage adds a contact-form entry to the end of the message log.
func (s *Store) AppendMessage(ctx context.Context, msg portfolio.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.loadLocked(ctx)
	doc.Messages = append(doc.Messages, msg)
	return s.saveLocked(ctx, doc)
}

// AppendBooking adds a booking entry to the end of the booking log.
func (s *Store) AppendBooking(ctx context.Context, b portfolio.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.loadLocked(ctx)
	doc.Bookings = append(doc.Bookings, b)
	return s.saveLocked(ctx, doc)
}
