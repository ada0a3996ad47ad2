// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/internal/session"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
)

// ── update profile ──

func TestUpdateProfile_RefreshesCookie(t *testing.T) {
	h, m := newTestHandler(t)
	updated := alice
	updated.Username = "alice2"
	updated.Company = "Acme"

	req := models.UpdateProfileRequest{UserID: alice.ID, Username: "alice2", Company: "Acme"}
	m.user.EXPECT().UpdateProfile(gomock.Any(), req).
		DoAndReturn(func(ctx context.Context, _ models.UpdateProfileRequest) (models.PublicUser, error) {
			id, ok := utils.GetUserIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, alice.ID, id)
			return updated, nil
		})

	httpReq := jsonRequest(http.MethodPut, "/api/user/update",
		`{"userId":"`+alice.ID+`","username":"alice2","company":"Acme"}`)
	httpReq.AddCookie(sessionCookie(t, h, alice))

	rr := serve(h, httpReq)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, msgProfileUpdated, resp.Message)
	assert.Equal(t, updated, resp.User)

	cookie := findCookie(rr, session.CookieName)
	require.NotNil(t, cookie)
	user, err := h.sessions.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	assert.Equal(t, "Acme", user.Company)
}

func TestUpdateProfile_Errors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing username",
			serviceErr:  fmt.Errorf("%w: username", service.ErrMissingRequiredFields),
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgMissingRequiredFields,
		},
		{
			name:        "other user",
			serviceErr:  service.ErrAccessDenied,
			wantStatus:  http.StatusForbidden,
			wantMessage: msgForbidden,
		},
		{
			name:        "user gone",
			serviceErr:  fmt.Errorf("error updating profile: %w", store.ErrUserNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: msgUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.user.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, tt.serviceErr)

			req := jsonRequest(http.MethodPut, "/api/user/update", `{"userId":"someone","username":"x"}`)
			req.AddCookie(sessionCookie(t, h, alice))

			rr := serve(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr.Body))
			assert.Nil(t, findCookie(rr, session.CookieName))
		})
	}
}

func TestUpdateProfile_WithoutSession(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, jsonRequest(http.MethodPut, "/api/user/update", `{"userId":"x","username":"y"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, msgUnauthorized, decodeMessage(t, rr.Body))
}

// ── me ──

func TestMe(t *testing.T) {
	h, m := newTestHandler(t)
	stored := alice
	stored.Company = "Acme"
	m.user.EXPECT().GetUser(gomock.Any(), alice.ID).Return(stored, nil)

	req := jsonRequest(http.MethodGet, "/api/user/me", "")
	req.AddCookie(sessionCookie(t, h, alice))

	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, stored, resp.User)
	assert.Empty(t, resp.Message)
}

func TestMe_TamperedCookie(t *testing.T) {
	h, _ := newTestHandler(t)

	cookie := sessionCookie(t, h, alice)
	cookie.Value += "x"

	req := jsonRequest(http.MethodGet, "/api/user/me", "")
	req.AddCookie(cookie)

	rr := serve(h, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
