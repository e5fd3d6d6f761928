// Package handler shapes the HTTP surface: it validates input, hands
// off to storage, and converts failures into structured JSON errors.
// Storage root causes are logged server-side and never leak into a
// response body.
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"clinic-booking-api/internal/config"
	"clinic-booking-api/internal/geo"
	"clinic-booking-api/internal/store"
	"clinic-booking-api/internal/validate"
)

type Handler struct {
	store store.Storage
	geo   *geo.Client
	auth  config.Auth
}

func New(st store.Storage, gc *geo.Client, authCfg config.Auth) *Handler {
	return &Handler{store: st, geo: gc, auth: authCfg}
}

func respondJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondMessage(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, map[string]string{"message": msg})
}

func respondValidation(w http.ResponseWriter, verr *validate.Error) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"message": "Invalid input data",
		"errors":  verr.Fields,
	})
}

// serverError logs the root cause and returns the generic message.
func serverError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	respondMessage(w, http.StatusInternalServerError, "Internal server error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
