package response

import (
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
)

type ReservationResponse struct {
	ID         int64  `json:"id"`
	Arrival    string `json:"arrival"`
	Departure  string `json:"departure"`
	ClientID   int64  `json:"client_id"`
	ClientName string `json:"client_name"`
	HotelCity  string `json:"hotel_city"`
	RoomID     int64  `json:"room_id"`
	RoomNumber int    `json:"room_number"`
	Floor      int    `json:"floor"`
}

type CreateReservationResponse struct {
	ID int64 `json:"id"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         rm.ID,
		Arrival:    rm.Arrival.String(),
		Departure:  rm.Departure.String(),
		ClientID:   rm.ClientID,
		ClientName: rm.ClientName,
		HotelCity:  rm.HotelCity,
		RoomID:     rm.RoomID,
		RoomNumber: rm.RoomNumber,
		Floor:      rm.Floor,
	}
}

func FromCreateReservationResult(result *commands.CreateReservationResult) *CreateReservationResponse {
	return &CreateReservationResponse{ID: result.ReservationID}
}
