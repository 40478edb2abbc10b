package garagerepo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, garage *domain.Garage) error {
	query := `
        INSERT INTO garages (player_id, name, lat, lng, capacity, kind, cost_monthly, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		garage.PlayerID, garage.Name, garage.Lat, garage.Lng,
		garage.Capacity, garage.Kind, garage.CostMonthly, garage.CreatedAt,
	).Scan(&garage.ID)
	if err != nil {
		zap.L().Error("can't save garage", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByPlayerID(ctx context.Context, playerID int) ([]domain.Garage, error) {
	query := `
        SELECT id, player_id, name, lat, lng, capacity, kind, cost_monthly, created_at
        FROM garages
        WHERE player_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		zap.L().Error("can't get garages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var garages []domain.Garage
	for rows.Next() {
		var garage domain.Garage
		err := rows.Scan(
			&garage.ID, &garage.PlayerID, &garage.Name, &garage.Lat, &garage.Lng,
			&garage.Capacity, &garage.Kind, &garage.CostMonthly, &garage.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan garage row", zap.Error(err))
			return nil, err
		}
		garages = append(garages, garage)
	}
	return garages, nil
}

func (r *Repository) SumCapacityByPlayerID(ctx context.Context, playerID int) (int, error) {
	query := `
        SELECT COALESCE(SUM(capacity), 0)
        FROM garages
        WHERE player_id = $1
    `
	var total int
	err := r.db.QueryRow(ctx, query, playerID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum garage capacity", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) SumMonthlyCostByPlayerID(ctx context.Context, playerID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(cost_monthly), 0)
        FROM garages
        WHERE player_id = $1
    `
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, playerID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum garage upkeep", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}
