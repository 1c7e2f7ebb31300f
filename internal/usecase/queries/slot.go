package queries

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotNotFound = errs.New("slot not found")

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindAll(ctx context.Context) ([]*SlotView, error)
	Counts(ctx context.Context) (*SlotCountsView, error)
}

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	List(ctx context.Context) ([]*SlotView, error)
	Counts(ctx context.Context) (*SlotCountsView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSlotNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *slotQueriesImpl) List(ctx context.Context) ([]*SlotView, error) {
	return q.store.FindAll(ctx)
}

func (q *slotQueriesImpl) Counts(ctx context.Context) (*SlotCountsView, error) {
	return q.store.Counts(ctx)
}
