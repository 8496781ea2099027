package http

import (
	"garagebook-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes. A nil token manager disables auth, which
// is the single-user local setup.
func NewRouter(
	contracts *ContractHandler,
	vehicles *VehicleHandler,
	reminders *ReminderHandler,
	tokens security.TokenManager,
) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()
	if tokens != nil {
		api.Use(AuthMiddleware(tokens))
	}

	api.HandleFunc("/contracts", contracts.Create).Methods("POST")
	api.HandleFunc("/contracts", contracts.List).Methods("GET")
	api.HandleFunc("/contracts/{id}", contracts.Get).Methods("GET")
	api.HandleFunc("/contracts/{id}", contracts.Update).Methods("PUT")
	api.HandleFunc("/contracts/{id}", contracts.Delete).Methods("DELETE")
	api.HandleFunc("/availability", contracts.Availability).Methods("GET")

	api.HandleFunc("/vehicles", vehicles.Create).Methods("POST")
	api.HandleFunc("/vehicles", vehicles.List).Methods("GET")
	api.HandleFunc("/vehicles/{id}", vehicles.Get).Methods("GET")
	api.HandleFunc("/vehicles/{id}", vehicles.Update).Methods("PUT")
	api.HandleFunc("/vehicles/{id}", vehicles.Delete).Methods("DELETE")
	api.HandleFunc("/vehicles/{id}/prefill", vehicles.CreatePrefilled).Methods("POST")

	api.HandleFunc("/reminders/pending", reminders.ListPending).Methods("GET")

	return router
}
