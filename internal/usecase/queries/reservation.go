package queries

import (
	"context"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/errs"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
}

type ReservationQueries interface {
	List(ctx context.Context) ([]*ReservationView, error)
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return views, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return view, nil
}
