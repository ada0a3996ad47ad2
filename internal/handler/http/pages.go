// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

type pageData struct {
	Title  string
	Active string

	User    *models.PublicUser
	UserID  string
	Message string

	SignupNotice string
	Catalog      models.STTCatalog
}

func parsePages() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// render executes the page into a buffer first so a template failure turns
// into a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("failed to render page")
		http.Error(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *Handler) landingPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Voice AI for your business"}
	if user, ok := utils.GetSessionUserFromContext(r.Context()); ok {
		data.User = &user
	}
	h.render(w, r, "landing.html", data)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", pageData{
		Title:   "Sign in",
		Message: r.URL.Query().Get("message"),
	})
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.html", pageData{
		Title:        "Sign up",
		SignupNotice: models.SignupConfirmation,
	})
}

func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, dashboardProfilePath, http.StatusTemporaryRedirect)
}

// profilePage renders the stored record rather than the cookie snapshot so
// that edits made from another session are visible.
func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	sessionUser, _ := utils.GetSessionUserFromContext(r.Context())

	user, err := h.services.UserService.GetUser(r.Context(), sessionUser.ID)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("user_id", sessionUser.ID).Msg("falling back to session user")
		user = sessionUser
	}

	h.render(w, r, "profile.html", pageData{
		Title:  "Profile",
		Active: "profile",
		User:   &user,
		UserID: user.ID,
	})
}

func (h *Handler) agentPage(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetSessionUserFromContext(r.Context())

	catalog, err := h.services.STTService.Catalog(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to load STT catalog")
		http.Error(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	h.render(w, r, "agent.html", pageData{
		Title:   "Agent",
		Active:  "agent",
		User:    &user,
		UserID:  user.ID,
		Catalog: catalog,
	})
}
