package vehiclerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const vehicleColumns = `id, player_id, fleet_code, type, status, wear, battery, mileage, tire_mileage, cost, lat, lng, dest_lat, dest_lng, purchased_at, delivery_at`

func scanVehicle(row pgx.Row, v *domain.Vehicle) error {
	return row.Scan(
		&v.ID, &v.PlayerID, &v.FleetCode, &v.Type, &v.Status,
		&v.Wear, &v.Battery, &v.Mileage, &v.TireMileage, &v.Cost,
		&v.Lat, &v.Lng, &v.DestLat, &v.DestLng,
		&v.PurchasedAt, &v.DeliveryAt,
	)
}

func (r *Repository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
        INSERT INTO vehicles (player_id, fleet_code, type, status, wear, battery, mileage, tire_mileage, cost, lat, lng, dest_lat, dest_lng, purchased_at, delivery_at)
        VALUES ($1, $2, $3, $4, LEAST(100, GREATEST(0, $5)), LEAST(100, GREATEST(0, $6)), $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		vehicle.PlayerID, vehicle.FleetCode, vehicle.Type, vehicle.Status,
		vehicle.Wear, vehicle.Battery, vehicle.Mileage, vehicle.TireMileage, vehicle.Cost,
		vehicle.Lat, vehicle.Lng, vehicle.DestLat, vehicle.DestLng,
		vehicle.PurchasedAt, vehicle.DeliveryAt,
	).Scan(&vehicle.ID)
	if err != nil {
		zap.L().Error("can't save vehicle", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error) {
	query := `
        SELECT ` + vehicleColumns + `
        FROM vehicles
        WHERE id = $1
    `
	var vehicle domain.Vehicle
	err := scanVehicle(r.db.QueryRow(ctx, query, vehicleID), &vehicle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find vehicle", zap.Error(err))
		return nil, err
	}
	return &vehicle, nil
}

func (r *Repository) FindByPlayerID(ctx context.Context, playerID int) ([]domain.Vehicle, error) {
	query := `
        SELECT ` + vehicleColumns + `
        FROM vehicles
        WHERE player_id = $1
        ORDER BY purchased_at DESC
    `
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		zap.L().Error("can't get vehicles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := scanVehicle(rows, &vehicle); err != nil {
			zap.L().Error("can't scan vehicle row", zap.Error(err))
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}

func (r *Repository) CountByPlayerID(ctx context.Context, playerID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM vehicles
        WHERE player_id = $1
    `
	var count int
	err := r.db.QueryRow(ctx, query, playerID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count vehicles", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Update persists the mutable vehicle state. Wear and battery are clamped to
// 0..100 at the storage layer.
func (r *Repository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
        UPDATE vehicles
        SET status = $1,
            wear = LEAST(100, GREATEST(0, $2)),
            battery = LEAST(100, GREATEST(0, $3)),
            mileage = $4,
            tire_mileage = $5,
            lat = $6, lng = $7,
            dest_lat = $8, dest_lng = $9,
            delivery_at = $10
        WHERE id = $11
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			vehicle.Status, vehicle.Wear, vehicle.Battery,
			vehicle.Mileage, vehicle.TireMileage,
			vehicle.Lat, vehicle.Lng, vehicle.DestLat, vehicle.DestLng,
			vehicle.DeliveryAt, vehicle.ID,
		)
		if err != nil {
			zap.L().Error("failed to update vehicle", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindForSimulation returns the vehicles the fleet tick has work for:
// active ones en route and ordered ones awaiting delivery.
func (r *Repository) FindForSimulation(ctx context.Context, limit uint32) ([]domain.Vehicle, error) {
	query := `
        SELECT ` + vehicleColumns + `
        FROM vehicles
        WHERE status = 'active' OR status = 'ordered'
        ORDER BY purchased_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get vehicles for simulation", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := scanVehicle(rows, &vehicle); err != nil {
			zap.L().Error("can't scan vehicle row for simulation", zap.Error(err))
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}
