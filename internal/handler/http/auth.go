// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: msgUserCreated, User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cookie, err := h.sessions.Issue(user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, cookie)
	log.Info().Str("user_id", user.ID).Msg("user logged in")

	utils.WriteJSON(w, models.UserResponse{Message: msgLoggedIn, User: user}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if user, err := h.sessions.FromRequest(r); err == nil {
		logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user logged out")
	}

	http.SetCookie(w, h.sessions.Revoke())
	utils.WriteMessage(w, msgLoggedOut, http.StatusOK)
}
