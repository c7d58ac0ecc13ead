package memory

import (
	"context"
	"sync"

	"hospitalrun-locale/internal/domain"
	"hospitalrun-locale/internal/domain/model"
	"hospitalrun-locale/internal/domain/ports/repository"
	"hospitalrun-locale/internal/infra/metrics"
)

var _ repository.ConfigDocumentStore = (*DocumentStore)(nil)

// DocumentStore keeps config documents in process memory. Used in dev mode and tests.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*model.PreferencesDocument
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: map[string]*model.PreferencesDocument{}}
}

func (s *DocumentStore) Get(ctx context.Context, id string) (*model.PreferencesDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		metrics.ObserveStoreOp("memory", "get", nil, true)
		return nil, domain.ErrNotFound
	}
	metrics.ObserveStoreOp("memory", "get", nil, false)
	return doc.Clone(), nil
}

func (s *DocumentStore) Put(ctx context.Context, doc *model.PreferencesDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := doc.Clone()
	prev := ""
	if cur, ok := s.docs[doc.ID]; ok {
		prev = cur.Rev
	}
	stored.Rev = model.NextRevision(prev)
	s.docs[doc.ID] = stored
	metrics.ObserveStoreOp("memory", "put", nil, false)
	return nil
}
