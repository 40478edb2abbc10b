package dto

import "github.com/shopspring/decimal"

type PlayerResponseDTO struct {
	ID       int             `json:"id" example:"1"`
	Username string          `json:"username" example:"fleetboss"`
	Balance  decimal.Decimal `json:"balance" example:"100000.00"`
	Score    int             `json:"score" example:"250"`
}

type SlotsResponseDTO struct {
	TotalSlots     int `json:"total_slots" example:"5"`
	UsedSlots      int `json:"used_slots" example:"3"`
	AvailableSlots int `json:"available_slots" example:"2"`
}
