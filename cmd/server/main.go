// Command server runs the KYC verification simulator. main wires
// dependencies and the server lifecycle; business logic lives in the
// internal packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"kycsim/internal/kyc/certificate"
	kychandler "kycsim/internal/kyc/handler"
	"kycsim/internal/kyc/metrics"
	"kycsim/internal/kyc/providers"
	"kycsim/internal/kyc/providers/aadhaar"
	"kycsim/internal/kyc/providers/ckyc"
	"kycsim/internal/kyc/providers/digilocker"
	"kycsim/internal/kyc/providers/offlineaadhaar"
	"kycsim/internal/kyc/providers/pan"
	"kycsim/internal/kyc/providers/videokyc"
	"kycsim/internal/kyc/service"
	"kycsim/internal/platform/clock"
	"kycsim/internal/platform/config"
	"kycsim/internal/platform/httpserver"
	kafkaproducer "kycsim/internal/platform/kafka/producer"
	"kycsim/internal/platform/logger"
	platformredis "kycsim/internal/platform/redis"
	"kycsim/internal/ratelimit"
	rlmiddleware "kycsim/internal/ratelimit/middleware"
	"kycsim/internal/ratelimit/store/bucket"
	httptransport "kycsim/internal/transport/http"
	audit "kycsim/pkg/platform/audit"
	auditsink "kycsim/pkg/platform/audit/sink"
	auditmemory "kycsim/pkg/platform/audit/store/memory"
	auditworker "kycsim/pkg/platform/audit/worker"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.NewSystem()
	registry := providers.NewRegistry()

	// Latencies mirror the original demo's per-step spinner delays, scaled
	// by the configured unit so fast demos can turn them down.
	unit := cfg.SimulatedLatency
	panProvider := pan.New(clk, 2*unit)
	aadhaarProvider := aadhaar.New(clk, 3*unit, cfg.SandboxOTP)
	digilockerProvider := digilocker.New(clk, 2*unit)
	ckycProvider := ckyc.New(clk, 2*unit, ckyc.SystemRand{}, cfg.CKYCHitRate)
	videoProvider := videokyc.New(clk, 3*unit)
	offlineProvider := offlineaadhaar.New(clk, 2*unit)

	for _, p := range []providers.Provider{
		panProvider, aadhaarProvider, digilockerProvider,
		ckycProvider, videoProvider, offlineProvider,
	} {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("register provider: %w", err)
		}
	}

	auditStore := auditmemory.NewInMemoryStore()
	inbox := make(chan audit.Event, 256)
	var sink audit.Sink
	producer, err := kafkaproducer.New(ctx, cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	if producer != nil {
		defer producer.Close()
		sink = auditsink.NewKafka(producer)
		log.Info("audit events publishing to kafka", "topic", cfg.Kafka.AuditTopic)
	}
	worker := auditworker.New(auditStore, sink, inbox, log)

	svc := service.New(service.Config{
		PAN:            panProvider,
		Aadhaar:        aadhaarProvider,
		Digilocker:     digilockerProvider,
		CKYC:           ckycProvider,
		VideoKYC:       videoProvider,
		OfflineAadhaar: offlineProvider,
		Issuer:         certificate.NewIssuer(cfg.CertSigningKey),
		Registry:       registry,
		SandboxOTP:     cfg.SandboxOTP,
		Logger:         log,
		Metrics:        metrics.New(),
		Emitter:        audit.NewEmitter(inbox, log),
	})

	var bucketStore ratelimit.BucketStore = bucket.NewInMemoryBucketStore()
	checks := map[string]httptransport.HealthChecker{}
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis client: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		bucketStore = bucket.NewRedisBucketStore(redisClient.Client)
		checks["redis"] = func(r *http.Request) error { return redisClient.Health(r.Context()) }
		log.Info("rate limiting backed by redis")
	}
	limiter := rlmiddleware.New(bucketStore, log, cfg.RateLimit.Limit, cfg.RateLimit.Window,
		rlmiddleware.WithDisabled(cfg.RateLimit.Disabled))

	router := httptransport.NewRouter(kychandler.New(svc, auditStore, log), limiter, checks)
	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(ctx)
	})
	g.Go(func() error {
		log.Info("starting kycsim server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("server stopped")
	return nil
}
