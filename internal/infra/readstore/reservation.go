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

const reservationViewColumns = `
SELECT r.id_reservation, r.date_arrivee, r.date_depart,
       c.id_client, c.nom_complet,
       h.ville,
       ch.id_chambre, ch.numero, ch.etage
FROM reservation r
JOIN client c ON r.id_client = c.id_client
JOIN contient co ON r.id_reservation = co.id_reservation
JOIN chambre ch ON co.id_chambre = ch.id_chambre
JOIN hotel h ON ch.id_hotel = h.id_hotel
`

type ReservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewColumns+`ORDER BY r.date_arrivee, r.id_reservation`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewColumns+`WHERE r.id_reservation = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view               queries.ReservationView
		arrival, departure time.Time
	)
	err := row.Scan(
		&view.ID, &arrival, &departure,
		&view.ClientID, &view.ClientName,
		&view.HotelCity,
		&view.RoomID, &view.RoomNumber, &view.Floor,
	)
	if err != nil {
		return nil, err
	}
	view.Arrival = booking.DateOf(arrival)
	view.Departure = booking.DateOf(departure)
	return &view, nil
}
