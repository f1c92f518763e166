package commands

import (
	"context"

	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/shared"
)

type RegisterClientResult struct {
	ClientID int64
}

type ClientCommands interface {
	Register(ctx context.Context, req reqdto.RegisterClientRequest) (*RegisterClientResult, error)
}

type clientCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewClientCommands(uow shared.UnitOfWork) ClientCommands {
	return &clientCommandsImpl{uow: uow}
}

func (c *clientCommandsImpl) Register(
	ctx context.Context,
	req reqdto.RegisterClientRequest,
) (*RegisterClientResult, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var clientID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Clients().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		clientID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RegisterClientResult{ClientID: clientID}, nil
}
