package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	myGRPC "github.com/MKhiriev/go-exam-drafts/internal/handler/grpc"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

// newGRPCServer binds the listener right away so a taken port fails at
// startup rather than in the serving goroutine.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler:  handler,
		server:   s,
		listener: lis,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
