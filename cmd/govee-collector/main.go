package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"tinygo.org/x/bluetooth"

	"github.com/joshp123/govee-collector/internal/collector"
	"github.com/joshp123/govee-collector/internal/config"
	"github.com/joshp123/govee-collector/internal/devicedb"
	"github.com/joshp123/govee-collector/internal/logging"
	"github.com/joshp123/govee-collector/internal/publish"
	"github.com/joshp123/govee-collector/internal/radio"
	"github.com/joshp123/govee-collector/internal/refresh"
	"github.com/joshp123/govee-collector/internal/server"
	"github.com/joshp123/govee-collector/internal/service"
	configv1 "github.com/joshp123/govee-collector/proto/gen/config/v1"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", envOrDefault("GOVEE_CONFIG", config.DefaultPath), "path to config.pbtxt")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}
	cfg.Core.GrpcAddr = envOrDefault("GOVEE_GRPC_ADDR", cfg.Core.GrpcAddr)
	cfg.Core.HttpAddr = envOrDefault("GOVEE_HTTP_ADDR", cfg.Core.HttpAddr)

	logger := logging.New(cfg.Logging, version)
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	devices, err := devicedb.Load(ctx, cfg)
	if err != nil {
		logger.Error("load devices", "error", err)
		os.Exit(1)
	}
	if devices.Len() == 0 {
		logger.Warn("no devices configured; every advertisement will be ignored")
	}
	logger.Info("device database loaded", "devices", devices.Len())

	if delay := time.Duration(cfg.Collector.InitDelaySeconds) * time.Second; delay > 0 {
		logger.Info("waiting before bluetooth init", "delay", delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return
		}
	}

	scanner := radio.NewScanner(bluetooth.DefaultAdapter, logger.With("component", "radio").Logger)
	if err := scanner.Enable(); err != nil {
		logger.Error("bluetooth adapter unavailable", "error", err)
		os.Exit(1)
	}
	events, err := scanner.Events(ctx)
	if err != nil {
		logger.Error("start scan", "error", err)
		os.Exit(1)
	}

	publishers, err := buildPublishers(cfg)
	if err != nil {
		logger.Error("init publishers", "error", err)
		os.Exit(1)
	}

	cache := collector.NewCache()
	collectorMetrics := collector.NewMetrics()
	opts := collector.Options{Logger: logger.Logger, Metrics: collectorMetrics}
	var fanout *publish.Fanout
	if len(publishers) > 0 {
		fanout = publish.NewFanout(devices, int(cfg.Collector.PublishQueueSize), logger.Logger, publishers...)
		opts.Sink = fanout
	}
	ingest := collector.New(devices, cache, opts)

	resolver := service.NewResolver(devices, cache)
	defaultInterval := time.Duration(cfg.Core.DefaultRefreshIntervalSeconds) * time.Second

	grpcServer, err := server.NewGRPCServer(cfg.Core.GrpcAddr, logger.Logger)
	if err != nil {
		logger.Error("grpc listen", "addr", cfg.Core.GrpcAddr, "error", err)
		os.Exit(1)
	}
	service.RegisterDeviceDataProvider(grpcServer.Server, resolver, service.Options{
		DefaultInterval: defaultInterval,
		Logger:          logger.Logger,
	})
	grpcServer.Health.SetServingStatus(goveev1.DeviceDataProvider_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	metricsRegistry, err := server.NewRegistry(metricsCollectors(collectorMetrics, cache)...)
	if err != nil {
		logger.Error("register metrics", "error", err)
		os.Exit(1)
	}

	httpMux := http.NewServeMux()
	var feedClosed atomic.Bool
	httpMux.HandleFunc("/health", server.HealthHandler(func() error {
		if feedClosed.Load() {
			return collector.ErrFeedClosed
		}
		return nil
	}))
	httpMux.Handle("/metrics", server.MetricsHandler(metricsRegistry))
	httpMux.Handle("/api/devices", server.DevicesHandler(resolver))
	httpMux.Handle("/ws/devices", server.NewWebSocketHandler(resolver, defaultInterval, logger.Logger))
	httpServer := server.NewHTTPServer(cfg.Core.HttpAddr, httpMux)

	errCh := make(chan error, 4)
	go func() {
		err := ingest.Run(ctx, events)
		feedClosed.Store(true)
		errCh <- fmt.Errorf("collector: %w", err)
	}()
	if fanout != nil {
		go func() {
			_ = fanout.Run(ctx)
		}()
	}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http serve: %w", err)
		}
	}()
	go func() {
		if err := grpcServer.Serve(); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()

	logger.Info("serving", "grpc", cfg.Core.GrpcAddr, "http", cfg.Core.HttpAddr)

	select {
	case err := <-errCh:
		if ctx.Err() == nil {
			logger.Error("fatal", "error", err)
			grpcServer.Stop()
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	grpcServer.Stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
}

func buildPublishers(cfg *configv1.Config) ([]publish.Publisher, error) {
	enabled := config.Publishers(cfg)
	var publishers []publish.Publisher
	if enabled["mqtt"] {
		p, err := publish.NewMQTTPublisher(cfg.Mqtt)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, p)
	}
	if enabled["kafka"] {
		p, err := publish.NewKafkaPublisher(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, p)
	}
	return publishers, nil
}

func metricsCollectors(collectorMetrics *collector.Metrics, cache *collector.Cache) []prometheus.Collector {
	collectors := []prometheus.Collector{
		collectorMetrics,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "govee_collector_cached_devices",
			Help: "Sensors with at least one decoded reading",
		}, func() float64 { return float64(cache.Len()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "govee_collector_build_info",
			Help:        "Build information",
			ConstLabels: prometheus.Labels{"version": version},
		}, func() float64 { return 1 }),
	}
	collectors = append(collectors, refresh.MetricsCollectors()...)
	collectors = append(collectors, publish.MetricsCollectors()...)
	return collectors
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "govee-collector: "+format+"\n", args...)
	os.Exit(1)
}
