package repository

import (
	"context"
	"kasaglow/internal/domains/wizard/model"
	"kasaglow/shared/failure"
	"sync"
)

type Sessions interface {
	Insert(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]*model.Session, error)
}

type repositoryImpl struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func New() Sessions {
	return &repositoryImpl{
		sessions: make(map[string]*model.Session),
	}
}

func (r *repositoryImpl) Insert(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return failure.Conflict("session already exists") // nolint:wrapcheck
	}

	r.sessions[session.ID] = session

	return nil
}

// Get returns nil when the session does not exist.
func (r *repositoryImpl) Get(_ context.Context, id string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sessions[id], nil
}

func (r *repositoryImpl) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)

	return nil
}

func (r *repositoryImpl) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions), nil
}

// List returns a snapshot of the stored sessions in no particular order.
func (r *repositoryImpl) List(_ context.Context) ([]*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*model.Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		res = append(res, session)
	}

	return res, nil
}
