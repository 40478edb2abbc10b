package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taxipark/robocab/internal/pg"
	garagerepo "github.com/taxipark/robocab/internal/repo/garage-repo"
	playerrepo "github.com/taxipark/robocab/internal/repo/player-repo"
	vehiclerepo "github.com/taxipark/robocab/internal/repo/vehicle-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.PlayerRepo)
	assert.NotNil(t, repo.VehicleRepo)
	assert.NotNil(t, repo.GarageRepo)

	assert.IsType(t, &playerrepo.Repository{}, repo.PlayerRepo)
	assert.IsType(t, &vehiclerepo.Repository{}, repo.VehicleRepo)
	assert.IsType(t, &garagerepo.Repository{}, repo.GarageRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
