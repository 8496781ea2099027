package http

import (
	"net/http"
	"strings"

	"garagebook-backend/internal/security"

	"github.com/gorilla/mux"
)

// AuthMiddleware validates the Bearer token on every request.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			if _, err := tokens.Validate(strings.TrimPrefix(header, "Bearer ")); err != nil {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
