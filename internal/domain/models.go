package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Player struct {
	ID           int             `db:"id"`
	Username     string          `db:"username"`
	PasswordHash string          `db:"password_hash"`
	Balance      decimal.Decimal `db:"balance"`
	Score        int             `db:"score"`
	CreatedAt    time.Time       `db:"created_at"`
}

const (
	// StandardVehicleType базовый автомобиль автопарка;
	StandardVehicleType string = "standard"
	// RobocabVehicleType флагманское беспилотное такси;
	RobocabVehicleType string = "robocab"
)

const (
	// NewVehicleStatus доставлен, ещё не выпущен на линию;
	NewVehicleStatus string = "new"
	// ActiveVehicleStatus на линии, движется к точке назначения;
	ActiveVehicleStatus string = "active"
	// ParkedVehicleStatus припаркован на стоянке;
	ParkedVehicleStatus string = "parked"
	// GarageVehicleStatus находится в гараже на обслуживании;
	GarageVehicleStatus string = "garage"
	// OrderedVehicleStatus куплен, ожидает доставки;
	OrderedVehicleStatus string = "ordered"
)

type Vehicle struct {
	ID          int             `db:"id"`
	PlayerID    int             `db:"player_id"`
	FleetCode   string          `db:"fleet_code"`
	Type        string          `db:"type"`
	Status      string          `db:"status"`
	Wear        float64         `db:"wear"`
	Battery     float64         `db:"battery"`
	Mileage     float64         `db:"mileage"`
	TireMileage float64         `db:"tire_mileage"`
	Cost        decimal.Decimal `db:"cost"`
	Lat         *float64        `db:"lat"`
	Lng         *float64        `db:"lng"`
	DestLat     *float64        `db:"dest_lat"`
	DestLng     *float64        `db:"dest_lng"`
	PurchasedAt time.Time       `db:"purchased_at"`
	DeliveryAt  *time.Time      `db:"delivery_at"`
}

const (
	GarageKind string = "garage"
	LotKind    string = "lot"
)

type Garage struct {
	ID          int             `db:"id"`
	PlayerID    int             `db:"player_id"`
	Name        string          `db:"name"`
	Lat         float64         `db:"lat"`
	Lng         float64         `db:"lng"`
	Capacity    int             `db:"capacity"`
	Kind        string          `db:"kind"`
	CostMonthly decimal.Decimal `db:"cost_monthly"`
	CreatedAt   time.Time       `db:"created_at"`
}

// SlotSummary is derived, never stored: available = total - used.
type SlotSummary struct {
	TotalSlots     int
	UsedSlots      int
	AvailableSlots int
}
