// Package grpcserver hosts the game and word services over gRPC.
package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/robalobadob/dailywordle/internal/api"
)

// shutdownGrace bounds how long GracefulStop may wait on open Play streams.
const shutdownGrace = 10 * time.Second

// Server is a gRPC server with the standard health service attached.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	names  []string
}

// New creates a Server. Register services before calling Serve.
func New(opts ...grpc.ServerOption) *Server {
	s := &Server{grpc: grpc.NewServer(opts...), health: health.NewServer()}
	grpc_health_v1.RegisterHealthServer(s.grpc, s.health)
	return s
}

// RegisterGame attaches the game service.
func (s *Server) RegisterGame(g *GameService) {
	api.RegisterDailyWordleServer(s.grpc, g)
	s.names = append(s.names, api.DailyWordleServiceDesc.ServiceName)
}

// RegisterWords attaches the word service.
func (s *Server) RegisterWords(w *WordService) {
	api.RegisterDailyWordServer(s.grpc, w)
	s.names = append(s.names, api.DailyWordServiceDesc.ServiceName)
}

// Serve marks every registered service SERVING and blocks until ctx is done or
// the listener fails. Cancellation drains in-flight calls with GracefulStop.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range s.names {
		s.health.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	log.Info().Str("addr", lis.Addr().String()).Strs("services", s.names).Msg("gRPC listening")
	serveErr := make(chan error, 1)
	go func() { serveErr <- s.grpc.Serve(lis) }()

	select {
	case <-ctx.Done():
		log.Info().Msg("gRPC shutting down")
		s.health.Shutdown()
		stopped := make(chan struct{})
		go func() {
			s.grpc.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(shutdownGrace):
			log.Warn().Msg("gRPC graceful stop timed out, closing streams")
			s.grpc.Stop()
		}
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Stop closes all connections immediately.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.Stop()
}
