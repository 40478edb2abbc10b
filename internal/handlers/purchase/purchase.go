package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/internal/dto"
	"github.com/taxipark/robocab/internal/service/purchaseservice"
	"github.com/taxipark/robocab/pkg/auth"
	"github.com/taxipark/robocab/pkg/utils"
	"github.com/taxipark/robocab/pkg/validate"
)

type Service interface {
	GetPlayer(ctx context.Context, playerID int) (*domain.Player, error)
	PurchaseVehicle(ctx context.Context, playerID int, purchase purchaseservice.VehiclePurchase) (*domain.Vehicle, error)
	PurchaseGarage(ctx context.Context, playerID int, purchase purchaseservice.GaragePurchase) (*domain.Garage, error)
	GetSlotSummary(ctx context.Context, playerID int) (*domain.SlotSummary, error)
	GetGarages(ctx context.Context, playerID int) ([]domain.Garage, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// PurchaseVehicle godoc
//
//	@Summary		Purchase a vehicle
//	@Description	Buy a new fleet vehicle: checks funds and free parking slots, debits the balance and creates the vehicle.
//	@Tags			Покупки
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseVehicleRequestDTO	true	"Vehicle purchase payload"
//	@Success		201		{object}	dto.PurchaseVehicleResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields, insufficient funds or no free slots"
//	@Failure		403		{object}	utils.Response	"Player identity mismatch"
//	@Failure		404		{object}	utils.Response	"Player not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/purchase-vehicle [post]
func (h *PurchaseHandler) PurchaseVehicle(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	var req dto.PurchaseVehicleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID != playerID {
		utils.RespondWithError(w, http.StatusForbidden, "Player identity mismatch")
		return
	}
	if req.Type == "" || req.Status == "" || req.Cost.IsZero() || len(req.Coords) != 2 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !validate.IsVehicleType(req.Type) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown vehicle type")
		return
	}
	if !validate.IsVehicleStatus(req.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown vehicle status")
		return
	}
	if !validate.IsCoord(req.Coords[0], req.Coords[1]) {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed coordinates")
		return
	}
	if req.Cost.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "Cost must be positive")
		return
	}

	vehicle, err := h.purchaseService.PurchaseVehicle(r.Context(), playerID, purchaseservice.VehiclePurchase{
		Type:    req.Type,
		Cost:    req.Cost,
		Status:  req.Status,
		Lat:     req.Coords[0],
		Lng:     req.Coords[1],
		Wear:    req.Wear,
		Battery: req.Battery,
		Mileage: req.Mileage,
	})
	if err != nil {
		respondPurchaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PurchaseVehicleResponseDTO{
		VehicleID: vehicle.ID,
	})
}

// PurchaseGarage godoc
//
//	@Summary		Purchase a garage or lot
//	@Description	Buy parking capacity: debits the first monthly payment and creates the garage.
//	@Tags			Покупки
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseGarageRequestDTO	true	"Garage purchase payload"
//	@Success		201		{object}	dto.PurchaseGarageResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields or insufficient funds"
//	@Failure		403		{object}	utils.Response	"Player identity mismatch"
//	@Failure		404		{object}	utils.Response	"Player not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/purchase-garage [post]
func (h *PurchaseHandler) PurchaseGarage(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	var req dto.PurchaseGarageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID != playerID {
		utils.RespondWithError(w, http.StatusForbidden, "Player identity mismatch")
		return
	}
	if req.Name == "" || req.Type == "" || len(req.Coords) != 2 || req.Capacity <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !validate.IsGarageKind(req.Type) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown garage kind")
		return
	}
	if !validate.IsCoord(req.Coords[0], req.Coords[1]) {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed coordinates")
		return
	}
	if req.CostMonthly.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "Monthly cost must not be negative")
		return
	}

	garage, err := h.purchaseService.PurchaseGarage(r.Context(), playerID, purchaseservice.GaragePurchase{
		Name:        req.Name,
		Lat:         req.Coords[0],
		Lng:         req.Coords[1],
		Capacity:    req.Capacity,
		Kind:        req.Type,
		CostMonthly: req.CostMonthly,
	})
	if err != nil {
		respondPurchaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PurchaseGarageResponseDTO{
		GarageID: garage.ID,
	})
}

// GetSlots godoc
//
//	@Summary		Get parking slot summary
//	@Description	Total, used and available parking slots for the player. Derived from garage capacity and vehicle count.
//	@Tags			Покупки
//	@Security		BearerAuth
//	@Produce		json
//	@Param			playerID	path		int	true	"Player ID"
//	@Success		200			{object}	dto.SlotsResponseDTO
//	@Failure		403			{object}	utils.Response	"Player identity mismatch"
//	@Failure		404			{object}	utils.Response	"Player not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/slots/{playerID} [get]
func (h *PurchaseHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	requestedID, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid player id")
		return
	}
	if requestedID != playerID {
		utils.RespondWithError(w, http.StatusForbidden, "Player identity mismatch")
		return
	}

	summary, err := h.purchaseService.GetSlotSummary(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, purchaseservice.ErrPlayerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SlotsResponseDTO{
		TotalSlots:     summary.TotalSlots,
		UsedSlots:      summary.UsedSlots,
		AvailableSlots: summary.AvailableSlots,
	})
}

// GetPlayer godoc
//
//	@Summary		Get own player profile
//	@Description	Identity, bank balance and score of the authenticated player.
//	@Tags			Покупки
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PlayerResponseDTO
//	@Failure		401	{object}	utils.Response	"Player not authorized"
//	@Failure		404	{object}	utils.Response	"Player not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/player [get]
func (h *PurchaseHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	player, err := h.purchaseService.GetPlayer(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, purchaseservice.ErrPlayerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlayerResponseDTO{
		ID:       player.ID,
		Username: player.Username,
		Balance:  player.Balance,
		Score:    player.Score,
	})
}

// GetGarages godoc
//
//	@Summary		List garages and lots
//	@Description	All capacity providers owned by the authenticated player.
//	@Tags			Покупки
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GarageResponseDTO
//	@Failure		401	{object}	utils.Response	"Player not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/garages [get]
func (h *PurchaseHandler) GetGarages(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	garages, err := h.purchaseService.GetGarages(r.Context(), playerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch garages")
		return
	}

	response := make([]dto.GarageResponseDTO, len(garages))
	for i, garage := range garages {
		response[i] = dto.GarageResponseDTO{
			ID:          garage.ID,
			Name:        garage.Name,
			Coords:      []float64{garage.Lat, garage.Lng},
			Capacity:    garage.Capacity,
			Type:        garage.Kind,
			CostMonthly: garage.CostMonthly,
			CreatedAt:   garage.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondPurchaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, purchaseservice.ErrPlayerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, purchaseservice.ErrInsufficientFunds), errors.Is(err, purchaseservice.ErrNoFreeSlots):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
