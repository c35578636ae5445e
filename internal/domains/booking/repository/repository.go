package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"kasaglow/internal/domains/booking/model"
	"kasaglow/shared/failure"
	"sync"
)

// Log is the append-only list of finalized bookings, kept in insertion order.
type Log interface {
	Append(ctx context.Context, record model.Record) error
	GetAll(ctx context.Context) ([]model.Record, error)
	Get(ctx context.Context, confirmationID string) (model.Record, error)
	Count(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	mu      sync.RWMutex
	records []model.Record
	index   map[string]int
}

func New() Log {
	return &repositoryImpl{
		index: make(map[string]int),
	}
}

func (r *repositoryImpl) Append(_ context.Context, record model.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[record.ConfirmationID]; ok {
		return failure.Conflict("confirmation id already recorded") // nolint:wrapcheck
	}

	r.index[record.ConfirmationID] = len(r.records)
	r.records = append(r.records, record)

	return nil
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Record(nil), r.records...), nil
}

// Get returns the zero Record when the id is unknown.
func (r *repositoryImpl) Get(_ context.Context, confirmationID string) (model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[confirmationID]
	if !ok {
		return model.Record{}, nil
	}

	return r.records[i], nil
}

func (r *repositoryImpl) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}
