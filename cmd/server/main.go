package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-site/server/internal/accesslog"
	"portfolio-site/server/internal/accesslog/repository"
	"portfolio-site/server/internal/config"
	documentshandler "portfolio-site/server/internal/documents/handler"
	documentsservice "portfolio-site/server/internal/documents/service"
	healthhandler "portfolio-site/server/internal/health/handler"
	"portfolio-site/server/internal/server"
	"portfolio-site/server/internal/session"
	"portfolio-site/server/internal/telemetry"
	"portfolio-site/server/internal/telemetry/otel"
	"portfolio-site/server/internal/telemetry/producer"
	verificationhandler "portfolio-site/server/internal/verification/handler"
	verificationservice "portfolio-site/server/internal/verification/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	if err := os.MkdirAll(cfg.FilesDir, 0o755); err != nil {
		log.Fatalf("files dir: %v", err)
	}

	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "portfolio-server", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry providers: %v", err)
	}
	providers.SetGlobal()

	// Telemetry events go to Kafka when brokers are configured, otherwise to
	// OTel logs (a no-op emitter when no OTLP endpoint is set either).
	var emitter telemetry.EventEmitter
	var kafkaProducer *producer.KafkaProducer
	if brokers := cfg.TelemetryKafkaBrokersList(); len(brokers) > 0 {
		kafkaProducer, err = producer.NewKafkaProducer(brokers, cfg.TelemetryKafkaTopic)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		emitter = kafkaProducer
		log.Printf("telemetry: kafka emitter (topic %s)", cfg.TelemetryKafkaTopic)
	} else {
		emitter = otel.NewEventEmitter(providers.LoggerProvider)
	}

	accessLog := accesslog.NewLogger(repository.NewFileRepository(cfg.AccessLogPath), emitter)
	verifyLog := accesslog.NewLogger(repository.NewFileRepository(cfg.VerificationLogPath), emitter)

	store := session.NewMemoryStore(cfg.SessionTTLDuration())
	verifySvc := verificationservice.NewVerifyService(store, accessLog, verifyLog, emitter)
	lister := documentsservice.NewLister(cfg.FilesDir)

	handler := server.NewHandler(cfg, server.Deps{
		Sessions:  store,
		AccessLog: accessLog,
		Verification: verificationhandler.NewHTTPHandler(
			verifySvc, cfg.SessionTTLDuration(), cfg.IsProduction()),
		Documents: documentshandler.NewHTTPHandler(lister),
		Health:    healthhandler.NewHTTPHandler(lister),
		Emitter:   emitter,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	accessLog.Drain(telemetry.ShutdownDrainDuration)
	verifyLog.Drain(telemetry.ShutdownDrainDuration)
	time.Sleep(telemetry.ShutdownDrainDuration)

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			log.Printf("kafka close: %v", err)
		}
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}
