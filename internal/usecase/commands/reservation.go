package commands

import (
	"context"

	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/shared"
)

var (
	ErrRoomUnavailable         = errs.New("room unavailable for the requested dates")
	ErrClientNotFound          = errs.New("client not found")
	ErrRoomNotFound            = errs.New("room not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationResult struct {
	ReservationID int64
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*CreateReservationResult, error)
}

type reservationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReservationCommands(uow shared.UnitOfWork) ReservationCommands {
	return &reservationCommandsImpl{uow: uow}
}

// Create books a room for a client. The availability re-check and both
// inserts (reservation row, room association) run in one serializable
// transaction, so a room listed as available moments earlier cannot be
// double-booked between the search and the submission.
func (r *reservationCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
) (*CreateReservationResult, error) {
	res, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var reservationID int64
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		ok, err := reads.ClientExists(ctx, res.ClientID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !ok {
			return ErrClientNotFound
		}

		ok, err = reads.RoomExists(ctx, res.RoomID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !ok {
			return ErrRoomNotFound
		}

		conflict, err := reads.RoomHasOverlap(ctx, res.RoomID(), res.Period())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict {
			return ErrRoomUnavailable
		}

		reservationID, err = tx.Reservations().Create(ctx, res)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Reservations().AttachRoom(ctx, reservationID, res.RoomID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateReservationResult{ReservationID: reservationID}, nil
}
