package repo

import (
	"github.com/taxipark/robocab/internal/pg"
	garagerepo "github.com/taxipark/robocab/internal/repo/garage-repo"
	playerrepo "github.com/taxipark/robocab/internal/repo/player-repo"
	vehiclerepo "github.com/taxipark/robocab/internal/repo/vehicle-repo"
)

type Repositories struct {
	PlayerRepo  *playerrepo.Repository
	VehicleRepo *vehiclerepo.Repository
	GarageRepo  *garagerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	playerRepo := playerrepo.New(conn, txManager)
	vehicleRepo := vehiclerepo.New(conn, txManager)
	garageRepo := garagerepo.New(conn)

	return &Repositories{
		PlayerRepo:  playerRepo,
		VehicleRepo: vehicleRepo,
		GarageRepo:  garageRepo,
	}
}
