package response

import (
	"hotel-desk/internal/usecase/queries"
)

type RoomResponse struct {
	ID          int64   `json:"id"`
	Number      int     `json:"number"`
	Floor       int     `json:"floor"`
	Smoking     bool    `json:"smoking"`
	RoomType    string  `json:"room_type"`
	NightlyRate float64 `json:"nightly_rate"`
	HotelCity   string  `json:"hotel_city"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:          rm.ID,
		Number:      rm.Number,
		Floor:       rm.Floor,
		Smoking:     rm.Smoking,
		RoomType:    rm.RoomType,
		NightlyRate: rm.NightlyRate,
		HotelCity:   rm.HotelCity,
	}
}
