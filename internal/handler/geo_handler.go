package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/julienschmidt/httprouter"

	"clinic-booking-api/internal/geo"
)

// coords must be "lng,lat" decimals
var coordsPattern = regexp.MustCompile(`^-?\d+(\.\d+)?,-?\d+(\.\d+)?$`)

func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" || len(query) > 200 {
		respondMessage(w, http.StatusBadRequest, "Query must be between 1-200 characters")
		return
	}

	body, err := h.geo.Geocode(r.Context(), query)
	if err != nil {
		geoError(w, "geocode", err)
		return
	}
	writeRawJSON(w, body)
}

func (h *Handler) ReverseGeocode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	coords := r.URL.Query().Get("coords")
	if !coordsPattern.MatchString(coords) {
		respondMessage(w, http.StatusBadRequest, "Invalid coords format. Expected: lng,lat")
		return
	}

	body, err := h.geo.ReverseGeocode(r.Context(), coords)
	if err != nil {
		geoError(w, "reverse geocode", err)
		return
	}
	writeRawJSON(w, body)
}

func geoError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, geo.ErrNotConfigured):
		respondMessage(w, http.StatusInternalServerError, "Maps API credentials not configured")
	case errors.Is(err, geo.ErrBadRequest):
		respondMessage(w, http.StatusBadRequest, "Upstream rejected the request")
	case errors.Is(err, geo.ErrTimeout):
		respondMessage(w, http.StatusGatewayTimeout, "Upstream request timed out")
	case errors.Is(err, geo.ErrUpstream):
		respondMessage(w, http.StatusBadGateway, "Upstream service error")
	default:
		serverError(w, op, err)
	}
}

func writeRawJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
