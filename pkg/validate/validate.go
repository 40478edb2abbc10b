package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"

	"github.com/taxipark/robocab/internal/domain"
)

// IsFleetCode reports whether s is a Luhn-valid vehicle fleet code.
func IsFleetCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

func IsCoord(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func IsVehicleType(t string) bool {
	switch t {
	case domain.StandardVehicleType, domain.RobocabVehicleType:
		return true
	}
	return false
}

func IsVehicleStatus(s string) bool {
	switch s {
	case domain.NewVehicleStatus, domain.ActiveVehicleStatus, domain.ParkedVehicleStatus,
		domain.GarageVehicleStatus, domain.OrderedVehicleStatus:
		return true
	}
	return false
}

func IsGarageKind(k string) bool {
	return k == domain.GarageKind || k == domain.LotKind
}
