// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/propal-dashboard/internal/utils"
)

func (h *Handler) sttConfig(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.services.STTService.Catalog(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, catalog, http.StatusOK)
}
