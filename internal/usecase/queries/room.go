package queries

import (
	"context"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/pkg/errs"
)

type RoomReadStore interface {
	// FindAvailable returns every room with no reservation overlapping the
	// period, using the same inclusive predicate the insertion re-check uses.
	FindAvailable(ctx context.Context, period booking.StayPeriod) ([]*RoomView, error)
}

type RoomQueries interface {
	// FindAvailable requires a valid StayPeriod; callers must have rejected
	// an empty or inverted date range before reaching the store.
	FindAvailable(ctx context.Context, period booking.StayPeriod) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) FindAvailable(ctx context.Context, period booking.StayPeriod) ([]*RoomView, error) {
	rooms, err := q.store.FindAvailable(ctx, period)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search available rooms")
	}
	return rooms, nil
}
