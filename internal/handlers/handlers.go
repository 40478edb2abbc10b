package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/taxipark/robocab/docs"
	"github.com/taxipark/robocab/internal/config"
	authhandlers "github.com/taxipark/robocab/internal/handlers/auth"
	fleethandlers "github.com/taxipark/robocab/internal/handlers/fleet"
	purchasehandlers "github.com/taxipark/robocab/internal/handlers/purchase"
	"github.com/taxipark/robocab/internal/handlers/tiles"
	"github.com/taxipark/robocab/internal/service"
	"github.com/taxipark/robocab/pkg/auth"
	"github.com/taxipark/robocab/pkg/clients"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	PurchaseVehicle(w http.ResponseWriter, r *http.Request)
	PurchaseGarage(w http.ResponseWriter, r *http.Request)
	GetSlots(w http.ResponseWriter, r *http.Request)
	GetPlayer(w http.ResponseWriter, r *http.Request)
	GetGarages(w http.ResponseWriter, r *http.Request)
}

type FleetHandler interface {
	GetVehicles(w http.ResponseWriter, r *http.Request)
	GetVehicle(w http.ResponseWriter, r *http.Request)
	UpdateVehicle(w http.ResponseWriter, r *http.Request)
}

type TileHandler interface {
	Proxy(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	PurchaseHandler PurchaseHandler
	FleetHandler    FleetHandler
	TileHandler     TileHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, cfg *config.Config) (*Handlers, error) {
	tileHandler, err := tiles.New(cfg.TileServerURL, clients.NewHTTPClient())
	if err != nil {
		return nil, err
	}

	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService),
		FleetHandler:    fleethandlers.New(s.FleetService),
		TileHandler:     tileHandler,
		jwtService:      jwtService,
	}, nil
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Get("/tiles/health", h.TileHandler.Health)
		r.Get("/tiles/*", h.TileHandler.Proxy)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Get("/player", h.PurchaseHandler.GetPlayer)
			r.Post("/purchase-vehicle", h.PurchaseHandler.PurchaseVehicle)
			r.Post("/purchase-garage", h.PurchaseHandler.PurchaseGarage)
			r.Get("/slots/{playerID}", h.PurchaseHandler.GetSlots)
			r.Get("/garages", h.PurchaseHandler.GetGarages)
			r.Route("/vehicles", func(r chi.Router) {
				r.Get("/", h.FleetHandler.GetVehicles)
				r.Get("/{vehicleID}", h.FleetHandler.GetVehicle)
				r.Patch("/{vehicleID}", h.FleetHandler.UpdateVehicle)
			})
		})
	})

	return r
}
