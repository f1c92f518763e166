//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is what the count helpers need from a connection; both the pool and
// an open transaction satisfy it.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SeedReferenceData loads the hotel/room/client seed shared with the demo
// deployment, so e2e scenarios run against the same data set.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sqlContent, err := ReadRepoFile("migrations/002_seed_data.sql")
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
		return fmt.Errorf("failed to apply seed data: %w", err)
	}

	return nil
}

// ReadRepoFile resolves a repo-root-relative path from possible working dirs
// (package dirs during `go test`).
func ReadRepoFile(file string) ([]byte, error) {
	candidates := []string{
		file, // repo root
		filepath.Join("..", file),
		filepath.Join("..", "..", file),
		filepath.Join("..", "..", "..", file),
	}
	var lastErr error
	for _, cand := range candidates {
		content, err := os.ReadFile(cand)
		if err == nil {
			return content, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

func CountReservations(t *testing.T, db DBLike) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM reservation").Scan(&count)
	require.NoError(t, err)
	return count
}

func CountRoomLinks(t *testing.T, db DBLike, roomID int64) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM contient WHERE id_chambre = $1", roomID).Scan(&count)
	require.NoError(t, err)
	return count
}
