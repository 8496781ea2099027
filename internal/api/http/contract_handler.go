package http

import (
	"encoding/json"
	"net/http"
	"time"

	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/service"

	"github.com/gorilla/mux"
)

// ContractHandler serves the rental contract endpoints
type ContractHandler struct {
	contracts service.ContractService
}

func NewContractHandler(contracts service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

type contractRequest struct {
	VehicleID        string    `json:"vehicle_id"`
	RenterName       string    `json:"renter_name"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	DepositCents     int64     `json:"deposit_cents"`
	ConditionReport  string    `json:"condition_report"`
}

func (req *contractRequest) toDomain(id string) *domain.RentalContract {
	return &domain.RentalContract{
		ID:               id,
		VehicleID:        req.VehicleID,
		RenterName:       req.RenterName,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		PricePerDayCents: req.PricePerDayCents,
		TotalPriceCents:  req.TotalPriceCents,
		DepositCents:     req.DepositCents,
		ConditionReport:  req.ConditionReport,
	}
}

// Create handles POST /api/v1/contracts
func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.VehicleID == "" {
		respondBadRequest(w, "vehicle_id is required")
		return
	}

	c, err := h.contracts.Add(r.Context(), req.toDomain(""))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// Get handles GET /api/v1/contracts/{id}
func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, err := h.contracts.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Update handles PUT /api/v1/contracts/{id}
func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	if err := h.contracts.Update(r.Context(), req.toDomain(id)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Delete handles DELETE /api/v1/contracts/{id}
func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.contracts.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// List handles GET /api/v1/contracts with optional vehicle_id and status
// (active, upcoming, expired) filters
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if vehicleID := r.URL.Query().Get("vehicle_id"); vehicleID != "" {
		contracts, err := h.contracts.ListByVehicle(ctx, vehicleID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, contracts)
		return
	}

	var (
		contracts []domain.RentalContract
		err       error
	)
	switch status := r.URL.Query().Get("status"); status {
	case "active":
		contracts, err = h.contracts.ActiveContracts(ctx)
	case "upcoming":
		contracts, err = h.contracts.UpcomingContracts(ctx)
	case "expired":
		contracts, err = h.contracts.ExpiredContracts(ctx)
	case "":
		respondBadRequest(w, "vehicle_id or status query parameter is required")
		return
	default:
		respondBadRequest(w, "unknown status filter: "+status)
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, contracts)
}

// Availability handles GET /api/v1/availability
func (h *ContractHandler) Availability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	vehicleID := q.Get("vehicle_id")
	if vehicleID == "" {
		respondBadRequest(w, "vehicle_id is required")
		return
	}

	start, err := time.Parse(time.RFC3339, q.Get("start"))
	if err != nil {
		respondBadRequest(w, "start must be an RFC3339 timestamp")
		return
	}
	end, err := time.Parse(time.RFC3339, q.Get("end"))
	if err != nil {
		respondBadRequest(w, "end must be an RFC3339 timestamp")
		return
	}
	if !start.Before(end) {
		respondBadRequest(w, domain.ReasonDateOrder)
		return
	}

	available, err := h.contracts.IsAvailable(r.Context(), vehicleID, start, end, q.Get("exclude_contract_id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"available": available})
}
