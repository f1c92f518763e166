package response

import (
	"hotel-desk/internal/usecase/queries"
)

type HotelResponse struct {
	ID         int64             `json:"id"`
	City       string            `json:"city"`
	Country    string            `json:"country"`
	PostalCode int               `json:"postal_code"`
	Services   []ServiceResponse `json:"services"`
}

type ServiceResponse struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func FromHotelView(rm *queries.HotelView) *HotelResponse {
	services := make([]ServiceResponse, len(rm.Services))
	for i, s := range rm.Services {
		services[i] = ServiceResponse{
			ID:          s.ID,
			Description: s.Description,
			Price:       s.Price,
		}
	}
	return &HotelResponse{
		ID:         rm.ID,
		City:       rm.City,
		Country:    rm.Country,
		PostalCode: rm.PostalCode,
		Services:   services,
	}
}
