//go:build unit

package booking_test

import (
	"testing"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(1), actual.ClientID())
		assert.Equal(t, int64(1), actual.RoomID())
		assert.Equal(t, "2025-06-20", actual.Period().Arrival().String())
		assert.Equal(t, "2025-06-25", actual.Period().Departure().String())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{
			name:   "zero client ID",
			mutate: func(b *builder.ReservationBuilder) { b.WithClientID(0) },
			errIs:  booking.ErrMissingClient,
		},
		{
			name:   "negative client ID",
			mutate: func(b *builder.ReservationBuilder) { b.WithClientID(-4) },
			errIs:  booking.ErrMissingClient,
		},
		{
			name:   "zero room ID",
			mutate: func(b *builder.ReservationBuilder) { b.WithRoomID(0) },
			errIs:  booking.ErrMissingRoom,
		},
		{
			name:   "inverted dates",
			mutate: func(b *builder.ReservationBuilder) { b.WithDates("2025-06-25", "2025-06-20") },
			errIs:  booking.ErrInvalidStayPeriod,
		},
		{
			name:   "malformed arrival",
			mutate: func(b *builder.ReservationBuilder) { b.WithArrival("20/06/2025") },
			errIs:  booking.ErrInvalidDate,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestReservationConflictsWith(t *testing.T) {
	build := func(roomID int64, arrival, departure string) *booking.Reservation {
		res, err := builder.NewReservationBuilder().
			WithRoomID(roomID).
			WithDates(arrival, departure).
			BuildDomain()
		require.NoError(t, err)
		return res
	}

	base := build(1, "2025-06-15", "2025-06-18")

	t.Run("same room, touching boundary conflicts", func(t *testing.T) {
		other := build(1, "2025-06-18", "2025-06-20")
		assert.True(t, base.ConflictsWith(other))
	})

	t.Run("same room, disjoint dates", func(t *testing.T) {
		other := build(1, "2025-06-19", "2025-06-21")
		assert.False(t, base.ConflictsWith(other))
	})

	t.Run("different room never conflicts", func(t *testing.T) {
		other := build(2, "2025-06-15", "2025-06-18")
		assert.False(t, base.ConflictsWith(other))
	})
}
