package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/effortcal/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertRecord = `INSERT INTO time_spent (id, date_dashed, category, time_hr, created_at)
	VALUES (?, '2024-01-01', 'manuscript', 1, '2024-01-01T00:00:00Z')`

func openTestUoW(t *testing.T) (*db.SQLiteUnitOfWork, func() int) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	count := func() int {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM time_spent`).Scan(&n))
		return n
	}
	return db.NewSQLiteUnitOfWork(database), count
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, count := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertRecord, "a")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, count := openTestUoW(t)
	boom := errors.New("boom")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertRecord, "a"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, count())
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, count := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertRecord, "a")
			panic("mid-transaction")
		})
	})
	assert.Equal(t, 0, count())
}
