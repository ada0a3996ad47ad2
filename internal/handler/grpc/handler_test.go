// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/mock"
	"github.com/MKhiriev/propal-dashboard/internal/service"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockHealthService) {
	t.Helper()
	health := mock.NewMockHealthService(gomock.NewController(t))
	return NewHandler(&service.Services{HealthService: health}, logger.Nop()), health
}

// ── Check ──

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		pingErr  error
		ping     bool
		want     healthpb.HealthCheckResponse_ServingStatus
		wantCode codes.Code
	}{
		{name: "server as a whole", ping: true, want: healthpb.HealthCheckResponse_SERVING},
		{name: "named service", service: ServiceName, ping: true, want: healthpb.HealthCheckResponse_SERVING},
		{name: "storage down", ping: true, pingErr: service.ErrStorageUnavailable, want: healthpb.HealthCheckResponse_NOT_SERVING},
		{name: "unknown service", service: "other", wantCode: codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, health := newTestHandler(t)
			if tt.ping {
				health.EXPECT().Check(gomock.Any()).Return(tt.pingErr)
			}

			resp, err := h.Check(context.Background(), &healthpb.HealthCheckRequest{Service: tt.service})

			if tt.wantCode != codes.OK {
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetStatus())
		})
	}
}

func TestCheck_OverBufconn(t *testing.T) {
	h, health := newTestHandler(t)
	health.EXPECT().Check(gomock.Any()).Return(nil)

	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.LoggingInterceptor))
	h.Register(srv)
	go srv.Serve(listener)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

// ── interceptor ──

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDMetadataKey, "trace-7"))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	var handlerCtx context.Context
	_, err := h.LoggingInterceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		handlerCtx = ctx
		return nil, status.Error(codes.Unavailable, "down")
	})

	require.Error(t, err)
	require.NotNil(t, handlerCtx)
	logger.FromContext(handlerCtx).Info().Msg("from handler")

	assert.Contains(t, buf.String(), `"trace_id":"trace-7"`)
	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"Unavailable"`)
	assert.Contains(t, buf.String(), "from handler")
}

func TestLoggingInterceptor_GeneratesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, err := h.LoggingInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x"},
		func(ctx context.Context, req any) (any, error) { return nil, errors.New("boom") })

	require.Error(t, err)
	assert.Contains(t, buf.String(), `"trace_id":"`)
}
