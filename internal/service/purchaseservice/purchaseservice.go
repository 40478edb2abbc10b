package purchaseservice

import (
	"context"
	"errors"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/internal/pg"
)

const (
	fleetCodeLength = 10
	// Time an "ordered" vehicle waits before the fleet service hands it over.
	deliveryLeadTime = 5 * time.Minute
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoFreeSlots       = errors.New("no free parking slots")
)

type PlayerRepo interface {
	FindByID(ctx context.Context, playerID int) (*domain.Player, error)
	FindByIDForUpdate(ctx context.Context, playerID int) (*domain.Player, error)
	UpdateBalance(ctx context.Context, playerID int, balance decimal.Decimal) error
	ListIDs(ctx context.Context) ([]int, error)
}

type VehicleRepo interface {
	Save(ctx context.Context, vehicle *domain.Vehicle) error
	CountByPlayerID(ctx context.Context, playerID int) (int, error)
}

type GarageRepo interface {
	Save(ctx context.Context, garage *domain.Garage) error
	FindByPlayerID(ctx context.Context, playerID int) ([]domain.Garage, error)
	SumCapacityByPlayerID(ctx context.Context, playerID int) (int, error)
	SumMonthlyCostByPlayerID(ctx context.Context, playerID int) (decimal.Decimal, error)
}

type Service struct {
	playerRepo  PlayerRepo
	vehicleRepo VehicleRepo
	garageRepo  GarageRepo
	txManager   pg.TXManager
}

func New(playerRepo PlayerRepo, vehicleRepo VehicleRepo, garageRepo GarageRepo, txManager pg.TXManager) *Service {
	return &Service{
		playerRepo:  playerRepo,
		vehicleRepo: vehicleRepo,
		garageRepo:  garageRepo,
		txManager:   txManager,
	}
}

type VehiclePurchase struct {
	Type    string
	Cost    decimal.Decimal
	Status  string
	Lat     float64
	Lng     float64
	Wear    *float64
	Battery *float64
	Mileage *float64
}

type GaragePurchase struct {
	Name        string
	Lat         float64
	Lng         float64
	Capacity    int
	Kind        string
	CostMonthly decimal.Decimal
}

// PurchaseVehicle runs the funds check, the slot check and both writes inside
// one transaction holding a row lock on the player, so concurrent purchases
// for the same player are serialized and cannot overdraw balance or slots.
func (s *Service) PurchaseVehicle(ctx context.Context, playerID int, purchase VehiclePurchase) (*domain.Vehicle, error) {
	var vehicle *domain.Vehicle
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		player, err := s.playerRepo.FindByIDForUpdate(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return ErrPlayerNotFound
		}
		if player.Balance.LessThan(purchase.Cost) {
			zap.L().Info("vehicle purchase rejected: insufficient funds",
				zap.Int("playerID", playerID),
				zap.String("cost", purchase.Cost.String()),
				zap.String("balance", player.Balance.String()),
			)
			return ErrInsufficientFunds
		}

		summary, err := s.slotSummary(ctx, playerID)
		if err != nil {
			return err
		}
		if summary.AvailableSlots <= 0 {
			zap.L().Info("vehicle purchase rejected: no free slots", zap.Int("playerID", playerID))
			return ErrNoFreeSlots
		}

		code := goluhn.Generate(fleetCodeLength)

		lat, lng := purchase.Lat, purchase.Lng
		vehicle = &domain.Vehicle{
			PlayerID:    playerID,
			FleetCode:   code,
			Type:        purchase.Type,
			Status:      purchase.Status,
			Cost:        purchase.Cost,
			Battery:     100,
			Lat:         &lat,
			Lng:         &lng,
			PurchasedAt: time.Now(),
		}
		if purchase.Wear != nil {
			vehicle.Wear = *purchase.Wear
		}
		if purchase.Battery != nil {
			vehicle.Battery = *purchase.Battery
		}
		if purchase.Mileage != nil {
			vehicle.Mileage = *purchase.Mileage
			vehicle.TireMileage = *purchase.Mileage
		}
		if purchase.Status == domain.OrderedVehicleStatus {
			deliveryAt := time.Now().Add(deliveryLeadTime)
			vehicle.DeliveryAt = &deliveryAt
		}

		if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
			return err
		}
		return s.playerRepo.UpdateBalance(ctx, playerID, player.Balance.Sub(purchase.Cost))
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("vehicle purchased",
		zap.Int("playerID", playerID),
		zap.Int("vehicleID", vehicle.ID),
		zap.String("fleetCode", vehicle.FleetCode),
	)
	return vehicle, nil
}

// PurchaseGarage debits the first monthly payment and creates the capacity row
// under the same per-player serialization as vehicle purchases.
func (s *Service) PurchaseGarage(ctx context.Context, playerID int, purchase GaragePurchase) (*domain.Garage, error) {
	var garage *domain.Garage
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		player, err := s.playerRepo.FindByIDForUpdate(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return ErrPlayerNotFound
		}
		if player.Balance.LessThan(purchase.CostMonthly) {
			zap.L().Info("garage purchase rejected: insufficient funds", zap.Int("playerID", playerID))
			return ErrInsufficientFunds
		}

		garage = &domain.Garage{
			PlayerID:    playerID,
			Name:        purchase.Name,
			Lat:         purchase.Lat,
			Lng:         purchase.Lng,
			Capacity:    purchase.Capacity,
			Kind:        purchase.Kind,
			CostMonthly: purchase.CostMonthly,
			CreatedAt:   time.Now(),
		}
		if err := s.garageRepo.Save(ctx, garage); err != nil {
			return err
		}
		return s.playerRepo.UpdateBalance(ctx, playerID, player.Balance.Sub(purchase.CostMonthly))
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("garage purchased",
		zap.Int("playerID", playerID),
		zap.Int("garageID", garage.ID),
		zap.Int("capacity", garage.Capacity),
	)
	return garage, nil
}

func (s *Service) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to get player", zap.Error(err))
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

func (s *Service) GetSlotSummary(ctx context.Context, playerID int) (*domain.SlotSummary, error) {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return s.slotSummary(ctx, playerID)
}

func (s *Service) slotSummary(ctx context.Context, playerID int) (*domain.SlotSummary, error) {
	total, err := s.garageRepo.SumCapacityByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	used, err := s.vehicleRepo.CountByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return &domain.SlotSummary{
		TotalSlots:     total,
		UsedSlots:      used,
		AvailableSlots: total - used,
	}, nil
}

func (s *Service) GetGarages(ctx context.Context, playerID int) ([]domain.Garage, error) {
	garages, err := s.garageRepo.FindByPlayerID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to get garages", zap.Error(err))
		return nil, err
	}
	return garages, nil
}

// AssessUpkeep debits every player's summed garage upkeep. The debit is capped
// at the current balance: upkeep never drives a balance negative.
func (s *Service) AssessUpkeep(ctx context.Context) error {
	ids, err := s.playerRepo.ListIDs(ctx)
	if err != nil {
		return err
	}

	for _, playerID := range ids {
		playerID := playerID
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			player, err := s.playerRepo.FindByIDForUpdate(ctx, playerID)
			if err != nil {
				return err
			}
			if player == nil {
				return nil
			}
			upkeep, err := s.garageRepo.SumMonthlyCostByPlayerID(ctx, playerID)
			if err != nil {
				return err
			}
			if upkeep.IsZero() {
				return nil
			}
			debit := upkeep
			if player.Balance.LessThan(upkeep) {
				zap.L().Warn("upkeep exceeds balance, capping debit",
					zap.Int("playerID", playerID),
					zap.String("upkeep", upkeep.String()),
					zap.String("balance", player.Balance.String()),
				)
				debit = player.Balance
			}
			return s.playerRepo.UpdateBalance(ctx, playerID, player.Balance.Sub(debit))
		})
		if err != nil {
			zap.L().Error("failed to assess upkeep", zap.Int("playerID", playerID), zap.Error(err))
		}
	}
	return nil
}
