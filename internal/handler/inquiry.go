package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/validate"
)

func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p validate.InquiryPayload
	if !decodeBody(w, r, &p) {
		return
	}
	in, verr := validate.Inquiry(p)
	if verr != nil {
		respondValidation(w, verr)
		return
	}

	q, err := h.store.CreateInquiry(r.Context(), in)
	if err != nil {
		serverError(w, "create inquiry", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Inquiry received",
		"id":      q.ID,
	})
}

func (h *Handler) ListInquiries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := h.store.ListInquiries(r.Context())
	if err != nil {
		serverError(w, "list inquiries", err)
		return
	}
	if out == nil {
		out = []model.Inquiry{}
	}
	respondJSON(w, http.StatusOK, out)
}

// UpdateInquiryStatus accepts any status string and succeeds even when
// the id is unknown.
func (h *Handler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.store.UpdateInquiryStatus(r.Context(), ps.ByName("id"), body.Status); err != nil {
		serverError(w, "update inquiry status", err)
		return
	}
	respondMessage(w, http.StatusOK, "Status updated")
}
