package http

import (
	"encoding/json"
	"net/http"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/service"

	"github.com/gorilla/mux"
)

// VehicleHandler serves the garage vehicle endpoints
type VehicleHandler struct {
	vehicles  service.VehicleService
	contracts service.ContractService
}

func NewVehicleHandler(vehicles service.VehicleService, contracts service.ContractService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, contracts: contracts}
}

type vehicleRequest struct {
	Name               string `json:"name"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	IsAvailableForRent bool   `json:"is_available_for_rent"`
	RentalPriceCents   int64  `json:"rental_price_cents"`
	DepositCents       int64  `json:"deposit_cents"`
	MinimumRentalDays  int    `json:"minimum_rental_days"`
}

func (req *vehicleRequest) toDomain(id string) *domain.Vehicle {
	return &domain.Vehicle{
		ID:                 id,
		Name:               req.Name,
		Make:               req.Make,
		Model:              req.Model,
		IsAvailableForRent: req.IsAvailableForRent,
		RentalPriceCents:   req.RentalPriceCents,
		DepositCents:       req.DepositCents,
		MinimumRentalDays:  req.MinimumRentalDays,
	}
}

// Create handles POST /api/v1/vehicles
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" {
		respondBadRequest(w, "name is required")
		return
	}

	v, err := h.vehicles.Add(r.Context(), req.toDomain(""))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// Get handles GET /api/v1/vehicles/{id}
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := h.vehicles.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// Update handles PUT /api/v1/vehicles/{id}
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	v, err := h.vehicles.Update(r.Context(), req.toDomain(id))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// Delete handles DELETE /api/v1/vehicles/{id}
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.vehicles.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// List handles GET /api/v1/vehicles
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

// CreatePrefilled handles POST /api/v1/vehicles/{id}/prefill
func (h *VehicleHandler) CreatePrefilled(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, err := h.contracts.CreatePrefilledContract(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}
