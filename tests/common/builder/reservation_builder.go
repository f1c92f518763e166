//go:build unit || e2e

package builder

import (
	"hotel-desk/internal/domain/booking"
	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/usecase/queries"
)

type ReservationBuilder struct {
	ClientID   int64
	RoomID     int64
	Arrival    string
	Departure  string
	ClientName string
	HotelCity  string
	RoomNumber int
	Floor      int
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ClientID:   1,
		RoomID:     1,
		Arrival:    "2025-06-20",
		Departure:  "2025-06-25",
		ClientName: "Jean Dupont",
		HotelCity:  "Paris",
		RoomNumber: 201,
		Floor:      2,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDomain() (*booking.Reservation, error) {
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

func (r *ReservationBuilder) BuildPeriod() (booking.StayPeriod, error) {
	arrival, err := booking.ParseDate(r.Arrival)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	departure, err := booking.ParseDate(r.Departure)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	return booking.NewStayPeriod(arrival, departure)
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ClientID:  r.ClientID,
		RoomID:    r.RoomID,
		Arrival:   r.Arrival,
		Departure: r.Departure,
	}
}

func (r *ReservationBuilder) BuildViewQuery(id int64) *queries.ReservationView {
	arrival, _ := booking.ParseDate(r.Arrival)
	departure, _ := booking.ParseDate(r.Departure)
	return &queries.ReservationView{
		ID:         id,
		Arrival:    arrival,
		Departure:  departure,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		HotelCity:  r.HotelCity,
		RoomID:     r.RoomID,
		RoomNumber: r.RoomNumber,
		Floor:      r.Floor,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithClientID(clientID int64) *ReservationBuilder {
	r.ClientID = clientID
	return r
}

func (r *ReservationBuilder) WithRoomID(roomID int64) *ReservationBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReservationBuilder) WithArrival(arrival string) *ReservationBuilder {
	r.Arrival = arrival
	return r
}

func (r *ReservationBuilder) WithDeparture(departure string) *ReservationBuilder {
	r.Departure = departure
	return r
}

func (r *ReservationBuilder) WithDates(arrival, departure string) *ReservationBuilder {
	r.Arrival = arrival
	r.Departure = departure
	return r
}
