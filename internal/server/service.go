package server

import (
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	wardrobev1 "github.com/gestir-app/wardrobe-tracker/gen/proto/wardrobe/v1"
	"github.com/gestir-app/wardrobe-tracker/internal/export"
	"github.com/gestir-app/wardrobe-tracker/internal/pipeline"
	"github.com/gestir-app/wardrobe-tracker/internal/repository"
)

// WardrobeService is the thin gRPC boundary in front of the ingestion
// pipeline and the read-side repositories.
type WardrobeService struct {
	wardrobev1.UnimplementedWardrobeServiceServer
	pipeline  *pipeline.Pipeline
	wardrobe  repository.WardrobeRepository
	runs      repository.RunRepository
	exporter  *export.Service
	modelName string
	logger    *slog.Logger
}

func NewWardrobeService(
	p *pipeline.Pipeline,
	wardrobe repository.WardrobeRepository,
	runs repository.RunRepository,
	exporter *export.Service,
	modelName string,
	logger *slog.Logger,
) *WardrobeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WardrobeService{
		pipeline:  p,
		wardrobe:  wardrobe,
		runs:      runs,
		exporter:  exporter,
		modelName: modelName,
		logger:    logger,
	}
}

// Serve registers the service and blocks on the listener.
func Serve(addr string, svc *WardrobeService, logger *slog.Logger) (*grpc.Server, net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}
	srv := grpc.NewServer()
	wardrobev1.RegisterWardrobeServiceServer(srv, svc)
	reflection.Register(srv)
	logger.Info("grpc server listening", "addr", addr)
	return srv, lis, nil
}
