// Package grpc exposes the draft server over gRPC. For now this is the
// standard health service, so orchestrators can probe the server on the
// gRPC port while drafts travel over HTTP.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/service"
)

// DraftServiceName is the service name reported by the health server next
// to the overall "" entry.
const DraftServiceName = "examdrafts.DraftService"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus(DraftServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING so probes fail before the
// listener goes away.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
}

// Check reports the health of service, "" meaning the server as a whole.
func (h *Handler) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}
