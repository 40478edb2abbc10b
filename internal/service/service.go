package service

import (
	"github.com/taxipark/robocab/internal/handlers/auth"
	"github.com/taxipark/robocab/internal/handlers/purchase"

	pkgauth "github.com/taxipark/robocab/pkg/auth"

	"github.com/taxipark/robocab/internal/config"
	"github.com/taxipark/robocab/internal/pg"
	"github.com/taxipark/robocab/internal/repo"
	authservice "github.com/taxipark/robocab/internal/service/authservice"
	fleetservice "github.com/taxipark/robocab/internal/service/fleetservice"
	purchaseservice "github.com/taxipark/robocab/internal/service/purchaseservice"
)

type Services struct {
	AuthService     auth.Service
	PurchaseService purchase.Service
	// FleetService also runs the background simulation, so the concrete type
	// is kept: the app starts it, the handlers consume it as fleet.Service.
	FleetService *fleetservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, jwtService pkgauth.JWTServiceInterface) *Services {
	purchaseService := purchaseservice.New(repo.PlayerRepo, repo.VehicleRepo, repo.GarageRepo, txManager)
	fleetService := fleetservice.New(cfg, repo.VehicleRepo, repo.PlayerRepo, purchaseService)
	authService := authservice.New(repo.PlayerRepo, &pkgauth.HashService{}, jwtService)

	return &Services{
		AuthService:     authService,
		PurchaseService: purchaseService,
		FleetService:    fleetService,
	}
}
