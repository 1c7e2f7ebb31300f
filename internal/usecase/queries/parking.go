package queries

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errs.New("session not found")

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	// FindActive returns ACTIVE sessions in entry order.
	FindActive(ctx context.Context) ([]*SessionView, error)
	// FindAll returns the full ledger in insertion order.
	FindAll(ctx context.Context) ([]*SessionView, error)
}

type SessionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	ListActive(ctx context.Context) ([]*SessionView, error)
	ListHistory(ctx context.Context) ([]*SessionView, error)
}

type sessionQueriesImpl struct {
	store SessionReadStore
}

func NewSessionQueries(store SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{store: store}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSessionNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *sessionQueriesImpl) ListActive(ctx context.Context) ([]*SessionView, error) {
	return q.store.FindActive(ctx)
}

func (q *sessionQueriesImpl) ListHistory(ctx context.Context) ([]*SessionView, error) {
	return q.store.FindAll(ctx)
}
