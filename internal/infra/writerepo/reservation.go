package writerepo

import (
	"context"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/infra"
)

type ReservationRepository struct {
	db infra.DBTX
}

func NewReservationRepository(db infra.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
INSERT INTO reservation (date_arrivee, date_depart, id_client)
VALUES ($1, $2, $3)
RETURNING id_reservation`,
		res.Period().Arrival().Time(),
		res.Period().Departure().Time(),
		res.ClientID(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert reservation", err, classifyPgError(err))
	}

	return id, nil
}

func (r *ReservationRepository) AttachRoom(ctx context.Context, reservationID, roomID int64) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO contient (id_reservation, id_chambre)
VALUES ($1, $2)`, reservationID, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to attach room to reservation", err, classifyPgError(err))
	}

	return nil
}
