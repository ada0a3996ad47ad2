// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/propal-dashboard/internal/config"
	myGRPC "github.com/MKhiriev/propal-dashboard/internal/handler/grpc"
)

type grpcServer struct {
	address string

	server *grpc.Server
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.LoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}

	if err := g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// shutdown waits for in-flight calls and falls back to a hard stop when ctx
// expires first.
func (g *grpcServer) shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
