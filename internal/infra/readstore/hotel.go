package readstore

import (
	"context"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/usecase/queries"
)

type HotelReadStore struct {
	db infra.DBTX
}

func NewHotelReadStore(db infra.DBTX) *HotelReadStore {
	return &HotelReadStore{db: db}
}

func (h *HotelReadStore) FindAllWithServices(ctx context.Context) ([]*queries.HotelView, error) {
	rows, err := h.db.Query(ctx, `
SELECT h.id_hotel, h.ville, h.pays, h.code_postal,
       p.id_prestation, p.description, p.prix
FROM hotel h
LEFT JOIN offre o ON h.id_hotel = o.id_hotel
LEFT JOIN prestation p ON o.id_prestation = p.id_prestation
ORDER BY h.id_hotel, p.id_prestation`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var (
		result  []*queries.HotelView
		current *queries.HotelView
	)
	for rows.Next() {
		var (
			hotelID            int64
			ville, pays        string
			codePostal         int
			serviceID          *int64
			serviceDescription *string
			servicePrice       *float64
		)
		if err := rows.Scan(
			&hotelID, &ville, &pays, &codePostal,
			&serviceID, &serviceDescription, &servicePrice,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}

		if current == nil || current.ID != hotelID {
			current = &queries.HotelView{
				ID:         hotelID,
				City:       ville,
				Country:    pays,
				PostalCode: codePostal,
				Services:   []queries.ServiceView{},
			}
			result = append(result, current)
		}

		// LEFT JOIN leaves the service columns NULL for hotels without offers.
		if serviceID != nil {
			current.Services = append(current.Services, queries.ServiceView{
				ID:          *serviceID,
				Description: *serviceDescription,
				Price:       *servicePrice,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel rows", err)
	}

	return result, nil
}
