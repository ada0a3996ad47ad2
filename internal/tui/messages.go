// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/models"
)

// NavigateTo asks the root model to switch screens. Message is shown on the
// destination screen when it supports notices.
type NavigateTo struct {
	Route   sessionctx.Route
	Message string
}

// errMsg opens the error overlay.
type errMsg struct {
	err error
}

type loginResultMsg struct {
	err error
}

type signupResultMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type profileSavedMsg struct {
	user models.PublicUser
	err  error
}

type profileRefreshedMsg struct {
	user models.PublicUser
	err  error
}

type copiedMsg struct {
	err error
}

type agentLoadedMsg struct {
	catalog   models.STTCatalog
	selection models.STTSelection
	err       error
}

type preferencesSavedMsg struct {
	err error
}

type clearStatusMsg struct{}
