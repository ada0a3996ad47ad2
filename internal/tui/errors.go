// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/propal-dashboard/internal/adapter"
)

var ErrUserQuit = errors.New("user quit")

const msgServerUnavailable = "No network connection or the server is unavailable"

// humanizeError turns transport failures into one readable line. Errors
// from the server already carry its message and are shown as they are.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrServiceUnavailable) || errors.Is(err, adapter.ErrBadGateway) {
		return msgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
