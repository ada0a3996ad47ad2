// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for the application server.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received or one of
// the transports fails, then shuts every transport down.
type Server interface {
	RunServer()
	Shutdown()
}

// transport is one listener managed by [Server].
type transport interface {
	name() string

	// serve blocks until the transport stops. A clean shutdown returns nil.
	serve() error

	shutdown(ctx context.Context) error
}
