package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseVehicleRequestDTO struct {
	PlayerID int             `json:"player_id" example:"1"`
	Type     string          `json:"type" example:"robocab"`
	Cost     decimal.Decimal `json:"cost" example:"35000.00"`
	Status   string          `json:"status" example:"ordered"`
	Coords   []float64       `json:"coords" example:"52.52,13.405"`
	Wear     *float64        `json:"wear,omitempty" example:"0"`
	Battery  *float64        `json:"battery,omitempty" example:"100"`
	Mileage  *float64        `json:"mileage,omitempty" example:"0"`
}

type PurchaseVehicleResponseDTO struct {
	VehicleID int `json:"vehicle_id" example:"42"`
}

type VehicleResponseDTO struct {
	ID          int             `json:"id" example:"42"`
	FleetCode   string          `json:"fleet_code" example:"2377225624"`
	Type        string          `json:"type" example:"robocab"`
	Status      string          `json:"status" example:"active"`
	Wear        float64         `json:"wear" example:"12.5"`
	Battery     float64         `json:"battery" example:"87"`
	Mileage     float64         `json:"mileage" example:"1042.7"`
	TireMileage float64         `json:"tire_mileage" example:"1042.7"`
	Cost        decimal.Decimal `json:"cost" example:"35000.00"`
	Coords      []float64       `json:"coords,omitempty" example:"52.52,13.405"`
	Destination []float64       `json:"destination,omitempty" example:"52.53,13.41"`
	PurchasedAt time.Time       `json:"purchased_at" example:"2020-12-09T16:09:57+03:00"`
	DeliveryAt  *time.Time      `json:"delivery_at,omitempty" example:"2020-12-10T16:09:57+03:00"`
}

type UpdateVehicleRequestDTO struct {
	Status      *string   `json:"status,omitempty" example:"parked"`
	Coords      []float64 `json:"coords,omitempty" example:"52.52,13.405"`
	Destination []float64 `json:"destination,omitempty" example:"52.53,13.41"`
	Wear        *float64  `json:"wear,omitempty" example:"12.5"`
	Battery     *float64  `json:"battery,omitempty" example:"87"`
}
