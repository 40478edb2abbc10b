package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseGarageRequestDTO struct {
	PlayerID    int             `json:"player_id" example:"1"`
	Name        string          `json:"name" example:"Depot Mitte"`
	Coords      []float64       `json:"coords" example:"52.52,13.405"`
	Capacity    int             `json:"capacity" example:"4"`
	Type        string          `json:"type" example:"garage"`
	CostMonthly decimal.Decimal `json:"cost_monthly" example:"1500.00"`
}

type PurchaseGarageResponseDTO struct {
	GarageID int `json:"garage_id" example:"7"`
}

type GarageResponseDTO struct {
	ID          int             `json:"id" example:"7"`
	Name        string          `json:"name" example:"Depot Mitte"`
	Coords      []float64       `json:"coords" example:"52.52,13.405"`
	Capacity    int             `json:"capacity" example:"4"`
	Type        string          `json:"type" example:"garage"`
	CostMonthly decimal.Decimal `json:"cost_monthly" example:"1500.00"`
	CreatedAt   time.Time       `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
