package request

import (
	"hotel-desk/internal/domain/booking"
)

type CreateReservationRequest struct {
	ClientID  int64  `json:"client_id" binding:"required"`
	RoomID    int64  `json:"room_id" binding:"required"`
	Arrival   string `json:"arrival" binding:"required" example:"2025-06-20"`
	Departure string `json:"departure" binding:"required" example:"2025-06-25"`
}

func (r CreateReservationRequest) ToDomain() (*booking.Reservation, error) {
	arrival, err := booking.ParseDate(r.Arrival)
	if err != nil {
		return nil, err
	}
	departure, err := booking.ParseDate(r.Departure)
	if err != nil {
		return nil, err
	}

	period, err := booking.NewStayPeriod(arrival, departure)
	if err != nil {
		return nil, err
	}

	return booking.NewReservation(r.ClientID, r.RoomID, period)
}

type AvailableRoomsQuery struct {
	Arrival   string `form:"arrival" binding:"required" example:"2025-06-20"`
	Departure string `form:"departure" binding:"required" example:"2025-06-25"`
}

func (q AvailableRoomsQuery) ToPeriod() (booking.StayPeriod, error) {
	arrival, err := booking.ParseDate(q.Arrival)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	departure, err := booking.ParseDate(q.Departure)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	return booking.NewStayPeriod(arrival, departure)
}
