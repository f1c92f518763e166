//go:build unit

package commands_test

import (
	"context"
	"testing"

	domclient "hotel-desk/internal/domain/client"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterClient(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewClientBuilder().BuildRegisterRequestDTO()

		tx.clients.On("Create", mock.Anything, mock.MatchedBy(func(c *domclient.Client) bool {
			return c.Email() == "sophie.bernard@email.fr"
		})).Return(int64(6), nil)

		result, err := commands.NewClientCommands(uow).Register(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(6), result.ClientID)

		tx.clients.AssertExpectations(t)
	})

	t.Run("validation failure never reaches the database", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewClientBuilder().WithEmail("not-an-email").BuildRegisterRequestDTO()

		result, err := commands.NewClientCommands(uow).Register(ctx, req)
		require.Nil(t, result)
		require.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.ErrorIs(t, err, domclient.ErrInvalidEmail)

		tx.clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert failure is a database error", func(t *testing.T) {
		uow, tx := newStubs()
		req := builder.NewClientBuilder().BuildRegisterRequestDTO()

		tx.clients.On("Create", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		result, err := commands.NewClientCommands(uow).Register(ctx, req)
		require.Nil(t, result)
		require.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}
