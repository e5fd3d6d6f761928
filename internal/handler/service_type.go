package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/validate"
)

func (h *Handler) ListServiceTypes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := h.store.ListServiceTypes(r.Context())
	if err != nil {
		serverError(w, "list service types", err)
		return
	}
	if out == nil {
		out = []model.ServiceType{}
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateServiceType(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p validate.ServiceTypePayload
	if !decodeBody(w, r, &p) {
		return
	}
	in, verr := validate.ServiceType(p)
	if verr != nil {
		respondValidation(w, verr)
		return
	}

	st, err := h.store.CreateServiceType(r.Context(), in)
	if err != nil {
		serverError(w, "create service type", err)
		return
	}
	respondJSON(w, http.StatusCreated, st)
}
