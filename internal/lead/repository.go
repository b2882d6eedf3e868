package lead

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("lead not found")

// Repository archives submission attempts. Archiving is best-effort: the
// pipeline never fails a booking over a write error here.
type Repository interface {
	Create(ctx context.Context, l *Lead) error
	GetByEventID(ctx context.Context, eventID string) (*Lead, error)
}

// InMemoryRepository backs tests and webhook-only deployments that run
// without Postgres.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{leads: make(map[string]*Lead)}
}

func (r *InMemoryRepository) Create(ctx context.Context, l *Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	cp := *l
	r.leads[l.EventID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByEventID(ctx context.Context, eventID string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leads[eventID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}
