// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
)

// errHandlerPanicked is mapped to 500 by writeError.
var errHandlerPanicked = errors.New("handler panicked")

// withRecover turns a panicking handler into a 500 JSON response and logs the
// panic with the request's trace id. http.ErrAbortHandler is re-raised so the
// server can abort the connection.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			writeError(w, r, errHandlerPanicked)
		}()

		next.ServeHTTP(w, r)
	})
}
