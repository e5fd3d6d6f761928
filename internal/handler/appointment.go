package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/validate"
)

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p validate.AppointmentPayload
	if !decodeBody(w, r, &p) {
		return
	}
	in, verr := validate.Appointment(p)
	if verr != nil {
		respondValidation(w, verr)
		return
	}

	a, err := h.store.CreateAppointment(r.Context(), in)
	if err != nil {
		serverError(w, "create appointment", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Appointment received",
		"id":      a.ID,
	})
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := h.store.ListAppointments(r.Context())
	if err != nil {
		serverError(w, "list appointments", err)
		return
	}
	if out == nil {
		out = []model.Appointment{}
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) ListAppointmentsByDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, verr := validate.Day(ps.ByName("date"))
	if verr != nil {
		respondValidation(w, verr)
		return
	}

	out, err := h.store.ListAppointmentsByDate(r.Context(), day)
	if err != nil {
		serverError(w, "list appointments by date", err)
		return
	}
	if out == nil {
		out = []model.Appointment{}
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.store.UpdateAppointmentStatus(r.Context(), ps.ByName("id"), body.Status); err != nil {
		serverError(w, "update appointment status", err)
		return
	}
	respondMessage(w, http.StatusOK, "Appointment status updated")
}
