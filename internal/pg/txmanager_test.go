package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool
}

func TestManager_Begin_Commit(t *testing.T) {
	mockPool := newMockPool(t)
	manager := NewTXManager(mockPool)

	mockPool.ExpectBegin()
	mockPool.ExpectCommit()

	called := false
	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		called = true
		assert.NotNil(t, extractTx(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestManager_Begin_RollbackOnError(t *testing.T) {
	mockPool := newMockPool(t)
	manager := NewTXManager(mockPool)

	mockPool.ExpectBegin()
	mockPool.ExpectRollback()

	wantErr := errors.New("insert failed")
	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestManager_Begin_BeginError(t *testing.T) {
	mockPool := newMockPool(t)
	manager := NewTXManager(mockPool)

	mockPool.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run when the transaction can't start")
		return nil
	})

	assert.Error(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestManager_Begin_NestedReusesTransaction(t *testing.T) {
	mockPool := newMockPool(t)
	manager := NewTXManager(mockPool)

	mockPool.ExpectBegin()
	mockPool.ExpectCommit()

	err := manager.Begin(context.Background(), func(outer context.Context) error {
		tx := extractTx(outer)
		return manager.Begin(outer, func(inner context.Context) error {
			assert.Equal(t, tx, extractTx(inner))
			return nil
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDB_RoutesThroughTransaction(t *testing.T) {
	mockPool := newMockPool(t)
	manager := NewTXManager(mockPool)
	db := New(mockPool)

	mockPool.ExpectBegin()
	mockPool.ExpectExec(regexp.QuoteMeta(`UPDATE players`)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()

	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		_, err := db.Exec(ctx, `UPDATE players SET score = score + 1 WHERE id = $1`, 1)
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDB_RoutesToPoolWithoutTransaction(t *testing.T) {
	mockPool := newMockPool(t)
	db := New(mockPool)

	rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
	mockPool.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WillReturnRows(rows)

	var id int
	err := db.QueryRow(context.Background(), `SELECT id FROM players LIMIT 1`).Scan(&id)
	assert.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
