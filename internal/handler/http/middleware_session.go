// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/session"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
)

const (
	loginPath            = "/login"
	signupPath           = "/signup"
	dashboardPath        = "/dashboard"
	dashboardProfilePath = "/dashboard/profile"
	apiPrefix            = "/api/"
)

// requireSession rejects API requests without a valid session cookie with
// 401 and stores the session user in the request context otherwise.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.sessions.FromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).WithField("user_id", user.ID)
		ctx := log.WithContext(utils.WithSessionUser(r.Context(), user))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// guard protects the pages. Dashboard pages without a valid session
// redirect to the login page; the login and signup pages redirect a
// signed-in visitor to the profile page. An invalid or expired cookie is
// cleared on the way. All redirects are 307. API requests pass through
// untouched; they are covered by requireSession.
func (h *Handler) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPIRequest(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.sessions.FromRequest(r)
		signedIn := err == nil

		if err != nil && !errors.Is(err, session.ErrNoSession) {
			logger.FromRequest(r).Debug().Err(err).Msg("clearing unusable session cookie")
			http.SetCookie(w, h.sessions.Revoke())
		}

		switch {
		case isProtectedPage(r.URL.Path) && !signedIn:
			http.Redirect(w, r, loginPath, http.StatusTemporaryRedirect)
			return
		case isAuthPage(r.URL.Path) && signedIn:
			http.Redirect(w, r, dashboardProfilePath, http.StatusTemporaryRedirect)
			return
		}

		if signedIn {
			r = r.WithContext(utils.WithSessionUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

func isProtectedPage(path string) bool {
	return path == dashboardPath || strings.HasPrefix(path, dashboardPath+"/")
}

func isAuthPage(path string) bool {
	return path == loginPath || path == signupPath
}

func isAPIRequest(path string) bool {
	return strings.HasPrefix(path, apiPrefix)
}
