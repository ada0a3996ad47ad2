// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/propal-dashboard/internal/config"
	"github.com/MKhiriev/propal-dashboard/internal/handler"
	myGRPC "github.com/MKhiriev/propal-dashboard/internal/handler/grpc"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
)

func TestNewServer_NoTransports(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestRun_NoTransports(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	router := http.NewServeMux()
	s := &server{
		transports: []transport{
			newHTTPServer(router, config.Server{HTTPAddress: "127.0.0.1:0"}),
			newGRPCServer(myGRPC.NewHandler(nil, logger.Nop()), config.Server{GRPCAddress: "127.0.0.1:0"}),
		},
		logger: logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ReturnsTransportError(t *testing.T) {
	s := &server{
		transports: []transport{
			newGRPCServer(myGRPC.NewHandler(nil, logger.Nop()), config.Server{GRPCAddress: "not-an-address"}),
		},
		logger: logger.Nop(),
	}

	err := s.run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gRPC server")
}

func TestShutdown_IsIdempotent(t *testing.T) {
	s := &server{
		transports: []transport{newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: "127.0.0.1:0"})},
		logger:     logger.Nop(),
	}

	assert.NotPanics(t, func() {
		s.Shutdown()
		s.Shutdown()
	})
}
