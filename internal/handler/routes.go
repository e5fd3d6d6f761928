package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"clinic-booking-api/internal/middleware"
)

// Register wires every route. Public create endpoints and login go
// through the rate limiter; admin reads and mutations require a valid
// bearer token.
func (h *Handler) Register(router *httprouter.Router, rl *middleware.RateLimiter) {
	secret := h.auth.JWTSecret

	router.GET("/health", h.Health)

	router.POST("/api/inquiries", middleware.RateLimit(rl, h.CreateInquiry))
	router.GET("/api/inquiries", middleware.Authenticate(secret, h.ListInquiries))
	router.PATCH("/api/inquiries/:id/status", middleware.Authenticate(secret, h.UpdateInquiryStatus))

	router.GET("/api/service-types", h.ListServiceTypes)
	router.POST("/api/service-types", middleware.Authenticate(secret, h.CreateServiceType))

	router.POST("/api/appointments", middleware.RateLimit(rl, h.CreateAppointment))
	router.GET("/api/appointments", middleware.Authenticate(secret, h.ListAppointments))
	router.GET("/api/appointments/date/:date", h.ListAppointmentsByDate)
	router.PATCH("/api/appointments/:id/status", middleware.Authenticate(secret, h.UpdateAppointmentStatus))

	router.POST("/api/auth/login", middleware.RateLimit(rl, h.Login))
	router.POST("/api/auth/refresh", h.Refresh)
	router.POST("/api/auth/logout", middleware.Authenticate(secret, h.Logout))
	router.GET("/api/auth/user", middleware.Authenticate(secret, h.CurrentUser))
	router.POST("/api/admin/change-password", middleware.Authenticate(secret, h.ChangePassword))

	router.GET("/api/maps/geocode", h.Geocode)
	router.GET("/api/maps/reverse-geocode", h.ReverseGeocode)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
