package queries

import (
	"context"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/errs"
)

var ErrClientNotFound = errs.New("client not found")

type ClientReadStore interface {
	FindAll(ctx context.Context) ([]*ClientView, error)
	FindByID(ctx context.Context, id int64) (*ClientView, error)
	FindReviews(ctx context.Context, clientID int64) ([]*ReviewView, error)
}

type ClientQueries interface {
	List(ctx context.Context) ([]*ClientView, error)
	GetByID(ctx context.Context, id int64) (*ClientView, error)
	ListReviews(ctx context.Context, clientID int64) ([]*ReviewView, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) List(ctx context.Context) ([]*ClientView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list clients")
	}
	return views, nil
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, id int64) (*ClientView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Wrap(err, "failed to find client")
	}
	return view, nil
}

func (q *clientQueriesImpl) ListReviews(ctx context.Context, clientID int64) ([]*ReviewView, error) {
	if _, err := q.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	reviews, err := q.store.FindReviews(ctx, clientID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list client reviews")
	}
	return reviews, nil
}
