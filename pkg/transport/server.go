package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/qaforge/datagen/pkg/pb"
)

// Server manages the lifecycle of the gRPC data generation server
type Server struct {
	service    pb.TestDataServiceServer
	grpcServer *grpc.Server
	listener   net.Listener
	config     Config
	ready      chan struct{}
}

// Config holds configuration for the server
type Config struct {
	Address           string                       // e.g., ":9091" or "0.0.0.0:9091"
	UnaryInterceptor  grpc.UnaryServerInterceptor  // Optional
	StreamInterceptor grpc.StreamServerInterceptor // Optional
}

// NewServer creates a new gRPC server with the given service implementation
func NewServer(service pb.TestDataServiceServer, config Config) *Server {
	if config.Address == "" {
		config.Address = ":9091"
	}

	return &Server{
		service: service,
		config:  config,
		ready:   make(chan struct{}),
		// grpcServer is created in Start() with interceptors
	}
}

// Ready is closed once the listener is accepting connections. Readiness
// probes should wait on it rather than assume Start has bound the port.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Start starts the gRPC server (blocking call)
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Address, err)
	}
	s.listener = listener

	opts := []grpc.ServerOption{}
	if s.config.UnaryInterceptor != nil {
		opts = append(opts, grpc.UnaryInterceptor(s.config.UnaryInterceptor))
	}
	if s.config.StreamInterceptor != nil {
		opts = append(opts, grpc.StreamInterceptor(s.config.StreamInterceptor))
	}

	s.grpcServer = grpc.NewServer(opts...)

	pb.RegisterTestDataServiceServer(s.grpcServer, s.service)

	// Reflection for grpcurl and grpcui
	reflection.Register(s.grpcServer)

	slog.Info("gRPC server starting", "address", s.config.Address)
	close(s.ready)

	if err := s.grpcServer.Serve(listener); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Stop gracefully stops the server, forcing shutdown when the context
// expires first.
func (s *Server) Stop(ctx context.Context) error {
	if s.grpcServer == nil {
		return nil
	}

	slog.Info("shutting down gRPC server")

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		slog.Info("gRPC server stopped gracefully")
	case <-ctx.Done():
		slog.Warn("graceful stop timeout, forcing shutdown")
		s.grpcServer.Stop()
	}

	return nil
}

// Address returns the server's listening address
func (s *Server) Address() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Address
}

// StopWithTimeout stops the server with a default 30-second timeout
func (s *Server) StopWithTimeout() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.Stop(ctx)
}
