package server

import (
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	docgenv1 "github.com/goliatone/go-docgen/api/docgen/v1"
)

const defaultMaxWorkers = 10

// Options configure the server runtime.
type Options struct {
	Port       int
	MaxWorkers int
	// Production selects TLS using CertFile/KeyFile. Failure to read the
	// pair is fatal at construction, before any listener exists.
	Production bool
	CertFile   string
	KeyFile    string
}

// Server owns the gRPC server, its worker admission bound and transport
// security. The service instance it registers is shared by all workers.
type Server struct {
	grpc *grpc.Server
	addr string
	tls  bool
	log  *zap.Logger
}

// New wires service into a configured gRPC server. Reading TLS material
// happens here so a misconfigured production deployment aborts startup
// instead of limping along.
func New(service docgenv1.DocumentServiceServer, opts Options, log *zap.Logger) (*Server, error) {
	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = defaultMaxWorkers
	}

	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(limitConcurrency(int64(workers))),
		grpc.NumStreamWorkers(uint32(workers)),
	}

	if opts.Production {
		creds, err := credentials.NewServerTLSFromFile(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("server: load TLS credentials: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
	}

	gs := grpc.NewServer(serverOpts...)
	docgenv1.RegisterDocumentServiceServer(gs, service)

	return &Server{
		grpc: gs,
		addr: fmt.Sprintf("[::]:%d", opts.Port),
		tls:  opts.Production,
		log:  log,
	}, nil
}

// ListenAndServe binds the configured port on all interfaces and blocks
// until the server stops. A bind failure is fatal; there is no retry.
func (s *Server) ListenAndServe() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: bind %s: %w", s.addr, err)
	}
	return s.Serve(lis)
}

// Serve accepts connections on lis until the server stops.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC server listening",
		zap.String("addr", lis.Addr().String()),
		zap.Bool("tls", s.tls))
	return s.grpc.Serve(lis)
}

// GracefulStop drains in-flight calls and stops accepting new ones.
func (s *Server) GracefulStop() {
	s.grpc.GracefulStop()
}
