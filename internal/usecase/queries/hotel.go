package queries

import (
	"context"

	"hotel-desk/internal/pkg/errs"
)

type HotelReadStore interface {
	// FindAllWithServices returns every hotel with the services it offers.
	FindAllWithServices(ctx context.Context) ([]*HotelView, error)
}

type HotelQueries interface {
	List(ctx context.Context) ([]*HotelView, error)
}

type hotelQueriesImpl struct {
	store HotelReadStore
}

func NewHotelQueries(store HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{store: store}
}

func (q *hotelQueriesImpl) List(ctx context.Context) ([]*HotelView, error) {
	hotels, err := q.store.FindAllWithServices(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list hotels")
	}
	return hotels, nil
}
