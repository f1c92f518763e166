package readstore

import (
	"context"
	"errors"
	"time"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type ClientReadStore struct {
	db infra.DBTX
}

func NewClientReadStore(db infra.DBTX) *ClientReadStore {
	return &ClientReadStore{db: db}
}

func (c *ClientReadStore) FindAll(ctx context.Context) ([]*queries.ClientView, error) {
	rows, err := c.db.Query(ctx, `
SELECT id_client, adresse, ville, code_postal, email, telephone, nom_complet
FROM client
ORDER BY id_client`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	var result []*queries.ClientView
	for rows.Next() {
		var view queries.ClientView
		if err := rows.Scan(
			&view.ID, &view.Address, &view.City, &view.PostalCode,
			&view.Email, &view.Phone, &view.FullName,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan client row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate client rows", err)
	}

	return result, nil
}

func (c *ClientReadStore) FindByID(ctx context.Context, id int64) (*queries.ClientView, error) {
	var view queries.ClientView
	err := c.db.QueryRow(ctx, `
SELECT id_client, adresse, ville, code_postal, email, telephone, nom_complet
FROM client
WHERE id_client = $1`, id).Scan(
		&view.ID, &view.Address, &view.City, &view.PostalCode,
		&view.Email, &view.Phone, &view.FullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}

	return &view, nil
}

func (c *ClientReadStore) FindReviews(ctx context.Context, clientID int64) ([]*queries.ReviewView, error) {
	rows, err := c.db.Query(ctx, `
SELECT id_evaluation, date, note, commentaire, id_client
FROM evaluation
WHERE id_client = $1
ORDER BY date, id_evaluation`, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list client reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var (
			view queries.ReviewView
			date time.Time
		)
		if err := rows.Scan(&view.ID, &date, &view.Rating, &view.Comment, &view.ClientID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		view.Date = booking.DateOf(date)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return result, nil
}
