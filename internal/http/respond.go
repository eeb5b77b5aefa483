package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/chandnsingh/groceryfrontend/internal/cart"
	"github.com/chandnsingh/groceryfrontend/internal/remote"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// handleCartError maps engine and remote errors onto the HTTP surface. Only
// the unauthenticated case is a synchronous mutation failure; everything else
// surfaces from the confirmed-path calls.
func handleCartError(w http.ResponseWriter, err error) {
	var apiErr *remote.APIError
	switch {
	case errors.Is(err, cart.ErrUnauthenticated):
		respondError(w, http.StatusUnauthorized, "unauthenticated", "sign in to modify the cart")
	case errors.Is(err, cart.ErrClearFailed):
		respondError(w, http.StatusBadGateway, "clear_failed", "cart was not cleared")
	case errors.Is(err, remote.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "unauthenticated", "session expired")
	case errors.As(err, &apiErr):
		respondError(w, http.StatusBadGateway, "upstream_error", apiErr.Message)
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
