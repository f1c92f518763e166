//go:build unit

package client_test

import (
	"testing"

	"hotel-desk/internal/domain/client"
	"hotel-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewClientBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Sophie Bernard", actual.FullName())
		assert.Equal(t, "14 Rue du Commerce", actual.Address())
		assert.Equal(t, "Toulouse", actual.City())
		assert.Equal(t, 31000, actual.PostalCode())
		assert.Equal(t, "sophie.bernard@email.fr", actual.Email())
		assert.Equal(t, "0667890123", actual.Phone())
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		actual, err := builder.NewClientBuilder().
			WithFullName("  Sophie Bernard  ").
			WithEmail(" sophie.bernard@email.fr ").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Sophie Bernard", actual.FullName())
		assert.Equal(t, "sophie.bernard@email.fr", actual.Email())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ClientBuilder)
		errIs  error
	}{
		{
			name:   "missing full name",
			mutate: func(b *builder.ClientBuilder) { b.WithFullName("") },
			errIs:  client.ErrMissingFullName,
		},
		{
			name:   "whitespace only full name",
			mutate: func(b *builder.ClientBuilder) { b.WithFullName("   ") },
			errIs:  client.ErrMissingFullName,
		},
		{
			name:   "missing address",
			mutate: func(b *builder.ClientBuilder) { b.WithAddress("") },
			errIs:  client.ErrMissingAddress,
		},
		{
			name:   "missing city",
			mutate: func(b *builder.ClientBuilder) { b.WithCity("") },
			errIs:  client.ErrMissingCity,
		},
		{
			name:   "missing email",
			mutate: func(b *builder.ClientBuilder) { b.WithEmail("") },
			errIs:  client.ErrMissingEmail,
		},
		{
			name:   "email without at sign",
			mutate: func(b *builder.ClientBuilder) { b.WithEmail("sophie.bernard.email.fr") },
			errIs:  client.ErrInvalidEmail,
		},
		{
			name:   "email starting with at sign",
			mutate: func(b *builder.ClientBuilder) { b.WithEmail("@email.fr") },
			errIs:  client.ErrInvalidEmail,
		},
		{
			name:   "email ending with at sign",
			mutate: func(b *builder.ClientBuilder) { b.WithEmail("sophie@") },
			errIs:  client.ErrInvalidEmail,
		},
		{
			name:   "missing phone",
			mutate: func(b *builder.ClientBuilder) { b.WithPhone("") },
			errIs:  client.ErrMissingPhone,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewClientBuilder().With(c.mutate).BuildDomain()
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("postal code is optional", func(t *testing.T) {
		b := builder.NewClientBuilder()
		b.PostalCode = 0
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 0, actual.PostalCode())
	})
}
