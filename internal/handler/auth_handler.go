package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/middleware"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Email == "" || body.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := h.store.UserByEmail(r.Context(), body.Email)
	if err != nil {
		serverError(w, "login", err)
		return
	}
	if u == nil || !auth.CheckPassword(u.PasswordHash, body.Password) {
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tok, err := auth.MakeToken(u.ID, h.auth.JWTSecret, h.auth.AccessTokenTTL)
	if err != nil {
		serverError(w, "login token", err)
		return
	}
	raw, hash, err := auth.NewSessionToken()
	if err != nil {
		serverError(w, "login session", err)
		return
	}
	if _, err := h.store.CreateRefreshSession(r.Context(), u.ID, hash,
		time.Now().Add(h.auth.RefreshTokenTTL)); err != nil {
		serverError(w, "login session", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token":        tok,
		"refreshToken": raw,
		"user":         u,
	})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.RefreshToken == "" {
		respondMessage(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	sess, err := h.store.RefreshSessionByHash(r.Context(), auth.HashSessionToken(body.RefreshToken))
	if err != nil {
		serverError(w, "refresh", err)
		return
	}
	if sess == nil || time.Now().After(sess.ExpiresAt) {
		respondMessage(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	if sess.Revoked {
		// reuse of a rotated token, assume theft and kill everything
		_ = h.store.RevokeRefreshSessions(r.Context(), sess.UserID)
		respondMessage(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	raw, hash, err := auth.NewSessionToken()
	if err != nil {
		serverError(w, "refresh session", err)
		return
	}
	if err := h.store.RotateRefreshSession(r.Context(), sess.ID, uuid.New().String(),
		sess.UserID, hash, time.Now().Add(h.auth.RefreshTokenTTL)); err != nil {
		serverError(w, "refresh rotate", err)
		return
	}

	tok, err := auth.MakeToken(sess.UserID, h.auth.JWTSecret, h.auth.AccessTokenTTL)
	if err != nil {
		serverError(w, "refresh token", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"token":        tok,
		"refreshToken": raw,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.store.RevokeRefreshSessions(r.Context(), middleware.UserID(r.Context())); err != nil {
		serverError(w, "logout", err)
		return
	}
	respondMessage(w, http.StatusOK, "Logged out")
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	u, err := h.store.GetUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		serverError(w, "fetch user", err)
		return
	}
	if u == nil {
		respondMessage(w, http.StatusNotFound, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, u)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.NewPassword) < 8 {
		respondMessage(w, http.StatusBadRequest, "New password must be at least 8 characters")
		return
	}

	uid := middleware.UserID(r.Context())
	u, err := h.store.GetUser(r.Context(), uid)
	if err != nil {
		serverError(w, "change password", err)
		return
	}
	if u == nil || !auth.CheckPassword(u.PasswordHash, body.CurrentPassword) {
		respondMessage(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(body.NewPassword)
	if err != nil {
		serverError(w, "change password", err)
		return
	}
	if err := h.store.UpdateUserPassword(r.Context(), uid, hash); err != nil {
		serverError(w, "change password", err)
		return
	}
	// force re-login everywhere with the new password
	_ = h.store.RevokeRefreshSessions(r.Context(), uid)

	respondMessage(w, http.StatusOK, "Password updated")
}
