// Package service implements the DeviceDataProvider gRPC API on top of the
// collector cache.
package service

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joshp123/govee-collector/internal/refresh"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

const DefaultRefreshInterval = 60 * time.Second

type service struct {
	goveev1.UnimplementedDeviceDataProviderServer
	resolver        *Resolver
	defaultInterval time.Duration
	logger          *slog.Logger
}

type Options struct {
	// DefaultInterval applies when a stream request has no interval.
	DefaultInterval time.Duration
	Logger          *slog.Logger
}

func RegisterDeviceDataProvider(server grpc.ServiceRegistrar, resolver *Resolver, opts Options) {
	interval := opts.DefaultInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	goveev1.RegisterDeviceDataProviderServer(server, &service{
		resolver:        resolver,
		defaultInterval: interval,
		logger:          logger.With("component", "grpc"),
	})
}

func (s *service) GetDeviceData(_ context.Context, req *goveev1.GetDeviceDataRequest) (*goveev1.GetDeviceDataResponse, error) {
	ids := s.resolver.ResolveIDs(req.GetUniqueIds())
	return &goveev1.GetDeviceDataResponse{Devices: s.resolver.Snapshot(ids)}, nil
}

func (s *service) StreamDeviceData(req *goveev1.StreamDeviceDataRequest, stream grpc.ServerStreamingServer[goveev1.StreamDeviceDataResponse]) error {
	interval, err := StreamInterval(req.RefreshIntervalInSecs, s.defaultInterval)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	session := refresh.NewSession(s.resolver.ResolveIDs(req.GetUniqueIds()), interval, s.resolver)
	defer session.Close()
	s.logger.Debug("stream opened", "session", session.ID(), "interval", interval)

	ctx := stream.Context()
	for {
		result, err := session.Next(ctx)
		if err != nil {
			s.logger.Debug("stream closed", "session", session.ID(), "error", err)
			return status.FromContextError(err).Err()
		}
		if err := stream.Send(&goveev1.StreamDeviceDataResponse{Devices: result.Devices}); err != nil {
			return err
		}
	}
}
