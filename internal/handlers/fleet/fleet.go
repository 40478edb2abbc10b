package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/internal/dto"
	"github.com/taxipark/robocab/internal/service/fleetservice"
	"github.com/taxipark/robocab/pkg/auth"
	"github.com/taxipark/robocab/pkg/utils"
	"github.com/taxipark/robocab/pkg/validate"
)

type Service interface {
	GetVehicles(ctx context.Context, playerID int) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, playerID, vehicleID int) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, playerID, vehicleID int, update fleetservice.VehicleUpdate) (*domain.Vehicle, error)
}

type FleetHandler struct {
	fleetService Service
}

func New(fleetService Service) *FleetHandler {
	return &FleetHandler{
		fleetService: fleetService,
	}
}

// GetVehicles godoc
//
//	@Summary		List own vehicles
//	@Description	All fleet vehicles of the authenticated player, newest first.
//	@Tags			Автопарк
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.VehicleResponseDTO
//	@Failure		401	{object}	utils.Response	"Player not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/vehicles [get]
func (h *FleetHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	vehicles, err := h.fleetService.GetVehicles(r.Context(), playerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch vehicles")
		return
	}

	response := make([]dto.VehicleResponseDTO, len(vehicles))
	for i, vehicle := range vehicles {
		response[i] = vehicleToDTO(&vehicle)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetVehicle godoc
//
//	@Summary		Get a vehicle
//	@Description	A single fleet vehicle owned by the authenticated player.
//	@Tags			Автопарк
//	@Security		BearerAuth
//	@Produce		json
//	@Param			vehicleID	path		int	true	"Vehicle ID"
//	@Success		200			{object}	dto.VehicleResponseDTO
//	@Failure		403			{object}	utils.Response	"Vehicle belongs to another player"
//	@Failure		404			{object}	utils.Response	"Vehicle not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/vehicles/{vehicleID} [get]
func (h *FleetHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	vehicleID, err := strconv.Atoi(chi.URLParam(r, "vehicleID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	vehicle, err := h.fleetService.GetVehicle(r.Context(), playerID, vehicleID)
	if err != nil {
		respondFleetError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, vehicleToDTO(vehicle))
}

// UpdateVehicle godoc
//
//	@Summary		Update a vehicle
//	@Description	Change status, position or destination of an owned vehicle. Wear and battery are clamped to 0..100.
//	@Tags			Автопарк
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			vehicleID	path		int							true	"Vehicle ID"
//	@Param			request		body		dto.UpdateVehicleRequestDTO	true	"Fields to update"
//	@Success		200			{object}	dto.VehicleResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		403			{object}	utils.Response	"Vehicle belongs to another player"
//	@Failure		404			{object}	utils.Response	"Vehicle not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/vehicles/{vehicleID} [patch]
func (h *FleetHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	vehicleID, err := strconv.Atoi(chi.URLParam(r, "vehicleID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	var req dto.UpdateVehicleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != nil && !validate.IsVehicleStatus(*req.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown vehicle status")
		return
	}

	update := fleetservice.VehicleUpdate{
		Status:  req.Status,
		Wear:    req.Wear,
		Battery: req.Battery,
	}
	if req.Coords != nil {
		if len(req.Coords) != 2 || !validate.IsCoord(req.Coords[0], req.Coords[1]) {
			utils.RespondWithError(w, http.StatusBadRequest, "Malformed coordinates")
			return
		}
		update.Lat = &req.Coords[0]
		update.Lng = &req.Coords[1]
	}
	if req.Destination != nil {
		if len(req.Destination) != 2 || !validate.IsCoord(req.Destination[0], req.Destination[1]) {
			utils.RespondWithError(w, http.StatusBadRequest, "Malformed destination")
			return
		}
		update.DestLat = &req.Destination[0]
		update.DestLng = &req.Destination[1]
	}

	vehicle, err := h.fleetService.UpdateVehicle(r.Context(), playerID, vehicleID, update)
	if err != nil {
		respondFleetError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, vehicleToDTO(vehicle))
}

func vehicleToDTO(vehicle *domain.Vehicle) dto.VehicleResponseDTO {
	resp := dto.VehicleResponseDTO{
		ID:          vehicle.ID,
		FleetCode:   vehicle.FleetCode,
		Type:        vehicle.Type,
		Status:      vehicle.Status,
		Wear:        vehicle.Wear,
		Battery:     vehicle.Battery,
		Mileage:     vehicle.Mileage,
		TireMileage: vehicle.TireMileage,
		Cost:        vehicle.Cost,
		PurchasedAt: vehicle.PurchasedAt,
		DeliveryAt:  vehicle.DeliveryAt,
	}
	if vehicle.Lat != nil && vehicle.Lng != nil {
		resp.Coords = []float64{*vehicle.Lat, *vehicle.Lng}
	}
	if vehicle.DestLat != nil && vehicle.DestLng != nil {
		resp.Destination = []float64{*vehicle.DestLat, *vehicle.DestLng}
	}
	return resp
}

func respondFleetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fleetservice.ErrVehicleNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, fleetservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
