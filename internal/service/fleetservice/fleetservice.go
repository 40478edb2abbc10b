package fleetservice

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taxipark/robocab/internal/config"
	"github.com/taxipark/robocab/internal/domain"
)

const (
	// Cruise speed of an autonomous taxi, km/h.
	cruiseSpeedKmH = 40.0
	// Approximate km per degree of latitude.
	kmPerDegree = 111.0

	batteryDrainPerKm = 0.8
	wearPerKm         = 0.05
	scorePerFare      = 10
)

var (
	baseFare  = decimal.RequireFromString("2.50")
	farePerKm = decimal.RequireFromString("1.20")
)

var simulatingVehicles sync.Map

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrNotOwner        = errors.New("vehicle belongs to another player")
)

type VehicleRepo interface {
	FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error)
	FindByPlayerID(ctx context.Context, playerID int) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	FindForSimulation(ctx context.Context, limit uint32) ([]domain.Vehicle, error)
}

type PlayerRepo interface {
	AddEarnings(ctx context.Context, playerID int, amount decimal.Decimal, score int) error
}

type UpkeepAssessor interface {
	AssessUpkeep(ctx context.Context) error
}

type Service struct {
	vehicleRepo    VehicleRepo
	playerRepo     PlayerRepo
	upkeep         UpkeepAssessor
	limit          uint32
	workerPool     WorkerPoolI
	tickInterval   time.Duration
	upkeepInterval time.Duration
}

func New(cfg *config.Config, vehicleRepo VehicleRepo, playerRepo PlayerRepo, upkeep UpkeepAssessor) *Service {
	return &Service{
		vehicleRepo:    vehicleRepo,
		playerRepo:     playerRepo,
		upkeep:         upkeep,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		tickInterval:   cfg.FleetTick,
		upkeepInterval: cfg.UpkeepTick,
	}
}

func (s *Service) GetVehicles(ctx context.Context, playerID int) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.FindByPlayerID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to get vehicles", zap.Error(err))
		return nil, err
	}
	return vehicles, nil
}

func (s *Service) GetVehicle(ctx context.Context, playerID, vehicleID int) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	if vehicle.PlayerID != playerID {
		return nil, ErrNotOwner
	}
	return vehicle, nil
}

type VehicleUpdate struct {
	Status  *string
	Lat     *float64
	Lng     *float64
	DestLat *float64
	DestLng *float64
	Wear    *float64
	Battery *float64
}

func (s *Service) UpdateVehicle(ctx context.Context, playerID, vehicleID int, update VehicleUpdate) (*domain.Vehicle, error) {
	vehicle, err := s.GetVehicle(ctx, playerID, vehicleID)
	if err != nil {
		return nil, err
	}

	if update.Status != nil {
		vehicle.Status = *update.Status
		if vehicle.Status != domain.OrderedVehicleStatus {
			vehicle.DeliveryAt = nil
		}
	}
	if update.Lat != nil && update.Lng != nil {
		vehicle.Lat = update.Lat
		vehicle.Lng = update.Lng
	}
	if update.DestLat != nil && update.DestLng != nil {
		vehicle.DestLat = update.DestLat
		vehicle.DestLng = update.DestLng
	}
	if update.Wear != nil {
		vehicle.Wear = *update.Wear
	}
	if update.Battery != nil {
		vehicle.Battery = *update.Battery
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		zap.L().Error("can't update vehicle: ", zap.Error(err))
		return nil, err
	}
	return vehicle, nil
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Fleet simulation service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	upkeepTicker := time.NewTicker(s.upkeepInterval)
	defer upkeepTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping fleet service")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processFleet(ctx)
		case <-upkeepTicker.C:
			if err := s.upkeep.AssessUpkeep(ctx); err != nil {
				zap.L().Error("Failed to assess garage upkeep", zap.Error(err))
			}
		}
	}
}

func (s *Service) processFleet(ctx context.Context) {
	vehicles, err := s.vehicleRepo.FindForSimulation(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch vehicles for simulation", zap.Error(err))
		return
	}

	tickID := uuid.NewString()

	var g errgroup.Group
	for _, vehicle := range vehicles {
		vehicle := vehicle

		if _, loaded := simulatingVehicles.LoadOrStore(vehicle.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, Task{
				TickID:    tickID,
				VehicleID: vehicle.ID,
				Run: func() error {
					defer simulatingVehicles.Delete(vehicle.ID)
					return s.handleVehicle(ctx, vehicle, tickID)
				},
			})
			if err != nil {
				simulatingVehicles.Delete(vehicle.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing fleet tick", zap.String("tickID", tickID), zap.Error(err))
	}
}

func (s *Service) handleVehicle(ctx context.Context, vehicle domain.Vehicle, tickID string) error {
	switch vehicle.Status {
	case domain.OrderedVehicleStatus:
		return s.handleDelivery(ctx, vehicle, tickID)
	case domain.ActiveVehicleStatus:
		return s.handleMovement(ctx, vehicle, tickID)
	default:
		return nil
	}
}

func (s *Service) handleDelivery(ctx context.Context, vehicle domain.Vehicle, tickID string) error {
	if vehicle.DeliveryAt == nil || time.Now().Before(*vehicle.DeliveryAt) {
		return nil
	}
	vehicle.Status = domain.NewVehicleStatus
	vehicle.DeliveryAt = nil
	if err := s.vehicleRepo.Update(ctx, &vehicle); err != nil {
		return err
	}
	zap.L().Info("Vehicle delivered",
		zap.String("tickID", tickID),
		zap.Int("vehicleID", vehicle.ID),
		zap.String("fleetCode", vehicle.FleetCode),
	)
	return nil
}

func (s *Service) handleMovement(ctx context.Context, vehicle domain.Vehicle, tickID string) error {
	if vehicle.Lat == nil || vehicle.Lng == nil || vehicle.DestLat == nil || vehicle.DestLng == nil {
		vehicle.Status = domain.ParkedVehicleStatus
		return s.vehicleRepo.Update(ctx, &vehicle)
	}

	distKm := distanceKm(*vehicle.Lat, *vehicle.Lng, *vehicle.DestLat, *vehicle.DestLng)
	stepKm := cruiseSpeedKmH * s.tickInterval.Hours()

	if distKm <= stepKm {
		return s.completeFare(ctx, vehicle, distKm, tickID)
	}

	frac := stepKm / distKm
	lat := *vehicle.Lat + (*vehicle.DestLat-*vehicle.Lat)*frac
	lng := *vehicle.Lng + (*vehicle.DestLng-*vehicle.Lng)*frac
	vehicle.Lat = &lat
	vehicle.Lng = &lng
	vehicle.Mileage += stepKm
	vehicle.TireMileage += stepKm
	vehicle.Wear += stepKm * wearPerKm
	vehicle.Battery -= stepKm * batteryDrainPerKm

	if vehicle.Battery <= 0 {
		vehicle.Battery = 0
		vehicle.Status = domain.ParkedVehicleStatus
		vehicle.DestLat = nil
		vehicle.DestLng = nil
		zap.L().Warn("Vehicle stranded with empty battery",
			zap.String("tickID", tickID),
			zap.Int("vehicleID", vehicle.ID),
		)
	}

	return s.vehicleRepo.Update(ctx, &vehicle)
}

func (s *Service) completeFare(ctx context.Context, vehicle domain.Vehicle, distKm float64, tickID string) error {
	vehicle.Lat = vehicle.DestLat
	vehicle.Lng = vehicle.DestLng
	vehicle.DestLat = nil
	vehicle.DestLng = nil
	vehicle.Status = domain.ParkedVehicleStatus
	vehicle.Mileage += distKm
	vehicle.TireMileage += distKm
	vehicle.Wear += distKm * wearPerKm
	vehicle.Battery -= distKm * batteryDrainPerKm
	if vehicle.Battery < 0 {
		vehicle.Battery = 0
	}

	if err := s.vehicleRepo.Update(ctx, &vehicle); err != nil {
		return err
	}

	fare := baseFare.Add(farePerKm.Mul(decimal.NewFromFloat(distKm))).Round(2)
	if err := s.playerRepo.AddEarnings(ctx, vehicle.PlayerID, fare, scorePerFare); err != nil {
		return err
	}

	zap.L().Info("Fare completed",
		zap.String("tickID", tickID),
		zap.Int("vehicleID", vehicle.ID),
		zap.Int("playerID", vehicle.PlayerID),
		zap.String("fare", fare.String()),
	)
	return nil
}

// distanceKm is an equirectangular approximation, good enough at city scale.
func distanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	meanLat := (lat1 + lat2) / 2 * math.Pi / 180
	dLat := (lat2 - lat1) * kmPerDegree
	dLng := (lng2 - lng1) * kmPerDegree * math.Cos(meanLat)
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
