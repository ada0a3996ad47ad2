// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/propal-dashboard/internal/session"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
)

// updateProfile saves username and company and re-issues the session cookie
// so that it carries the new profile.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), req)
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
	utils.WriteJSON(w, models.UserResponse{Message: msgProfileUpdated, User: user}, http.StatusOK)
}

// me returns the stored record of the session user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, session.ErrNoSession)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}
