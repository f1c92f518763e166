package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/infra/writerepo"
	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// Within runs fn at SERIALIZABLE isolation. The availability check and the
// reservation inserts happen in the same transaction, so two concurrent
// bookings of the same room cannot both pass the check: one of them fails
// with a serialization error and is retried against the committed state.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx infra.DBTX

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	clientRepo      shared.ClientRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = writerepo.NewReservationRepository(t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Clients() shared.ClientRepository {
	if t.clientRepo == nil {
		t.clientRepo = writerepo.NewClientRepository(t.dbtx)
	}
	return t.clientRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx infra.DBTX
}

func (r *commandReads) RoomExists(ctx context.Context, roomID int64) (bool, error) {
	var exists bool
	err := r.dbtx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM chambre WHERE id_chambre = $1)`, roomID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room existence", err)
	}
	return exists, nil
}

func (r *commandReads) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	var exists bool
	err := r.dbtx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM client WHERE id_client = $1)`, clientID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check client existence", err)
	}
	return exists, nil
}

// RoomHasOverlap uses the same inclusive predicate as the availability
// search: an existing stay whose departure equals the new arrival (or vice
// versa) blocks the room.
func (r *commandReads) RoomHasOverlap(ctx context.Context, roomID int64, period booking.StayPeriod) (bool, error) {
	var conflict bool
	err := r.dbtx.QueryRow(ctx, `
SELECT EXISTS (
    SELECT 1
    FROM contient co
    JOIN reservation r ON co.id_reservation = r.id_reservation
    WHERE co.id_chambre = $1
      AND r.date_arrivee <= $3
      AND r.date_depart >= $2
)`, roomID, period.Arrival().Time(), period.Departure().Time(),
	).Scan(&conflict)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room overlap", err)
	}
	return conflict, nil
}
