package shared

import (
	"context"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/domain/client"
)

// UnitOfWork runs a function inside one transaction: every repository
// obtained from the Tx shares that transaction, and either everything the
// function wrote commits or none of it is visible.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Clients() ClientRepository
	Reads() CommandReads
}

type ReservationRepository interface {
	// Create inserts the reservation row and returns the generated ID.
	Create(ctx context.Context, res *booking.Reservation) (int64, error)
	// AttachRoom links the reservation to its room in the association table.
	AttachRoom(ctx context.Context, reservationID, roomID int64) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) (int64, error)
}

// CommandReads are the read-side checks commands need inside their own
// transaction, so the availability decision and the inserts see one
// consistent snapshot.
type CommandReads interface {
	RoomExists(ctx context.Context, roomID int64) (bool, error)
	ClientExists(ctx context.Context, clientID int64) (bool, error)
	// RoomHasOverlap reports whether any existing reservation on the room
	// conflicts with the period under the inclusive overlap rule.
	RoomHasOverlap(ctx context.Context, roomID int64, period booking.StayPeriod) (bool, error)
}
