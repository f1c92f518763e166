package readstore

import (
	"context"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/usecase/queries"
)

type RoomReadStore struct {
	db infra.DBTX
}

func NewRoomReadStore(db infra.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

// FindAvailable excludes every room that already has a reservation touching
// the requested period. Boundaries count as conflicts: a stay ending on the
// requested arrival day still blocks the room, since checkout and checkin
// share that day.
func (r *RoomReadStore) FindAvailable(ctx context.Context, period booking.StayPeriod) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, `
SELECT ch.id_chambre, ch.numero, ch.etage, ch.fumeurs, t.type, t.tarif, h.ville
FROM chambre ch
JOIN type_chambre t ON ch.id_type = t.id_type
JOIN hotel h ON ch.id_hotel = h.id_hotel
WHERE ch.id_chambre NOT IN (
    SELECT co.id_chambre
    FROM contient co
    JOIN reservation r ON co.id_reservation = r.id_reservation
    WHERE r.date_arrivee <= $2 AND r.date_depart >= $1
)
ORDER BY ch.id_chambre`, period.Arrival().Time(), period.Departure().Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		var view queries.RoomView
		if err := rows.Scan(
			&view.ID, &view.Number, &view.Floor, &view.Smoking,
			&view.RoomType, &view.NightlyRate, &view.HotelCity,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}
