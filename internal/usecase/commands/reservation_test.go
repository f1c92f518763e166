//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-desk/internal/domain/booking"
	domclient "hotel-desk/internal/domain/client"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/shared"
	"hotel-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *booking.Reservation) (int64, error) {
	args := m.Called(ctx, res)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) AttachRoom(ctx context.Context, reservationID, roomID int64) error {
	args := m.Called(ctx, reservationID, roomID)
	return args.Error(0)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *domclient.Client) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommandReads struct {
	mock.Mock
}

func (m *MockCommandReads) RoomExists(ctx context.Context, roomID int64) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommandReads) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommandReads) RoomHasOverlap(ctx context.Context, roomID int64, period booking.StayPeriod) (bool, error) {
	args := m.Called(ctx, roomID, period)
	return args.Bool(0), args.Error(1)
}

// stubTx hands the mocks to the command; stubUoW runs the function directly,
// standing in for a real transaction.
type stubTx struct {
	reservations *MockReservationRepository
	clients      *MockClientRepository
	reads        *MockCommandReads
}

func (t *stubTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *stubTx) Clients() shared.ClientRepository           { return t.clients }
func (t *stubTx) Reads() shared.CommandReads                 { return t.reads }

type stubUoW struct {
	tx *stubTx
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func newStubs() (*stubUoW, *stubTx) {
	tx := &stubTx{
		reservations: new(MockReservationRepository),
		clients:      new(MockClientRepository),
		reads:        new(MockCommandReads),
	}
	return &stubUoW{tx: tx}, tx
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		tx.reads.On("ClientExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomHasOverlap", mock.Anything, int64(1), mock.Anything).Return(false, nil)
		tx.reservations.On("Create", mock.Anything, mock.Anything).Return(int64(11), nil)
		tx.reservations.On("AttachRoom", mock.Anything, int64(11), int64(1)).Return(nil)

		result, err := commands.NewReservationCommands(uow).Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(11), result.ReservationID)

		tx.reservations.AssertExpectations(t)
		tx.reads.AssertExpectations(t)
	})

	t.Run("invalid dates never reach the database", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewReservationBuilder().
			WithDates("2025-06-25", "2025-06-20").
			BuildCreateRequestDTO()

		result, err := commands.NewReservationCommands(uow).Create(ctx, req)
		require.Nil(t, result)
		// the categorization is a mark, so stdlib errors.Is cannot see it
		require.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)

		tx.reads.AssertNotCalled(t, "ClientExists", mock.Anything, mock.Anything)
	})

	t.Run("unknown client", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewReservationBuilder().WithClientID(99).BuildCreateRequestDTO()

		tx.reads.On("ClientExists", mock.Anything, int64(99)).Return(false, nil)

		result, err := commands.NewReservationCommands(uow).Create(ctx, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrClientNotFound)

		tx.reads.AssertNotCalled(t, "RoomExists", mock.Anything, mock.Anything)
		tx.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown room", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewReservationBuilder().WithRoomID(42).BuildCreateRequestDTO()

		tx.reads.On("ClientExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomExists", mock.Anything, int64(42)).Return(false, nil)

		result, err := commands.NewReservationCommands(uow).Create(ctx, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrRoomNotFound)

		tx.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("overlapping reservation blocks the room", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewReservationBuilder().
			WithDates("2025-06-18", "2025-06-20").
			BuildCreateRequestDTO()

		tx.reads.On("ClientExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomHasOverlap", mock.Anything, int64(1), mock.Anything).Return(true, nil)

		result, err := commands.NewReservationCommands(uow).Create(ctx, req)
		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)

		tx.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		tx.reservations.AssertNotCalled(t, "AttachRoom", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insert failure is a database error", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		tx.reads.On("ClientExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomHasOverlap", mock.Anything, int64(1), mock.Anything).Return(false, nil)
		tx.reservations.On("Create", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		result, err := commands.NewReservationCommands(uow).Create(ctx, req)
		require.Nil(t, result)
		require.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})

	t.Run("overlap check failure is a database error", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		tx.reads.On("ClientExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomExists", mock.Anything, int64(1)).Return(true, nil)
		tx.reads.On("RoomHasOverlap", mock.Anything, int64(1), mock.Anything).Return(false, assert.AnError)

		result, err := commands.NewReservationCommands(uow).Create(ctx, req)
		require.Nil(t, result)
		require.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}
