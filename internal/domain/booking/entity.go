package booking

import (
	"errors"
)

var (
	ErrMissingClient = errors.New("reservation requires a client")
	ErrMissingRoom   = errors.New("reservation requires a room")
)

// Reservation is a stay booked by one client for exactly one room. The
// schema allows several rooms per reservation through the association
// table, but this system only ever attaches one.
type Reservation struct {
	id       int64
	clientID int64
	roomID   int64
	period   StayPeriod
}

func NewReservation(clientID, roomID int64, period StayPeriod) (*Reservation, error) {
	if clientID <= 0 {
		return nil, ErrMissingClient
	}
	if roomID <= 0 {
		return nil, ErrMissingRoom
	}
	return &Reservation{
		clientID: clientID,
		roomID:   roomID,
		period:   period,
	}, nil
}

func ReconstructReservation(id, clientID, roomID int64, period StayPeriod) *Reservation {
	return &Reservation{
		id:       id,
		clientID: clientID,
		roomID:   roomID,
		period:   period,
	}
}

func (r *Reservation) ID() int64          { return r.id }
func (r *Reservation) ClientID() int64    { return r.clientID }
func (r *Reservation) RoomID() int64      { return r.roomID }
func (r *Reservation) Period() StayPeriod { return r.period }

// ConflictsWith reports whether another reservation on the same room blocks
// this one, using the inclusive overlap rule of StayPeriod.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	return r.roomID == other.roomID && r.period.Overlaps(other.period)
}
