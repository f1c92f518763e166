package writerepo

import (
	"context"
	"errors"

	"hotel-desk/internal/domain/client"
	"hotel-desk/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type ClientRepository struct {
	db infra.DBTX
}

func NewClientRepository(db infra.DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
INSERT INTO client (adresse, ville, code_postal, email, telephone, nom_complet)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id_client`,
		c.Address(), c.City(), c.PostalCode(),
		c.Email(), c.Phone(), c.FullName(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert client", err, classifyPgError(err))
	}

	return id, nil
}

func classifyPgError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return infra.KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return infra.KindForeignKeyViolated
	default:
		return infra.KindDBFailure
	}
}
