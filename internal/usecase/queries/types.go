package queries

import (
	"hotel-desk/internal/domain/booking"
)

// Read models (DTO for read side). These are denormalized projections of
// the seeded schema, not domain entities.

type ReservationView struct {
	ID         int64        `json:"id"`
	Arrival    booking.Date `json:"arrival"`
	Departure  booking.Date `json:"departure"`
	ClientID   int64        `json:"client_id"`
	ClientName string       `json:"client_name"`
	HotelCity  string       `json:"hotel_city"`
	RoomID     int64        `json:"room_id"`
	RoomNumber int          `json:"room_number"`
	Floor      int          `json:"floor"`
}

type ClientView struct {
	ID         int64  `json:"id"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode int    `json:"postal_code"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	FullName   string `json:"full_name"`
}

type RoomView struct {
	ID          int64   `json:"id"`
	Number      int     `json:"number"`
	Floor       int     `json:"floor"`
	Smoking     bool    `json:"smoking"`
	RoomType    string  `json:"room_type"`
	NightlyRate float64 `json:"nightly_rate"`
	HotelCity   string  `json:"hotel_city"`
}

type ServiceView struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type HotelView struct {
	ID         int64         `json:"id"`
	City       string        `json:"city"`
	Country    string        `json:"country"`
	PostalCode int           `json:"postal_code"`
	Services   []ServiceView `json:"services"`
}

type ReviewView struct {
	ID       int64        `json:"id"`
	Date     booking.Date `json:"date"`
	Rating   int          `json:"rating"`
	Comment  *string      `json:"comment,omitempty"`
	ClientID int64        `json:"client_id"`
}
