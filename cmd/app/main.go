package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"marketplace/cmd"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/tracing"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const serviceName = "marketplace"

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.InitTracing(serviceName, configs.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Error initializing tracing: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	publisher, producer := newPublisher(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := jobs.NewJobManager(app.CreateGetOrderStateSummaryQueryHandler(), configs.ReportSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e := newWebServer(app, configs, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka producer close failed", "error", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load(".env")

	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// newPublisher connects to Kafka when KAFKA_HOST is set. The producer is
// returned so it can be closed on shutdown.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderChangedPublisher, sarama.SyncProducer) {
	if configs.KafkaHost == "" {
		logger.Warn("KAFKA_HOST is not set, order changes will not be published")
		return kafka.NewNoopPublisher(logger), nil
	}

	producer, err := kafka.NewSyncProducer(strings.Split(configs.KafkaHost, ","))
	if err != nil {
		log.Fatalf("Error connecting to Kafka: %v", err)
	}
	return kafka.NewOrderChangedPublisher(producer, configs.KafkaOrderChangedTopic, logger), producer
}

func newWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover(), middleware.RequestID(), otelecho.Middleware(serviceName))
	e.Use(httpadapter.RequestLogger(logger), httpadapter.Metrics())

	server := httpadapter.NewServer(
		app.CreateCreateProductCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAppendOrderEventCommandHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.Register(e, httpadapter.Authenticate([]byte(configs.JWTSecret)))

	doc, err := httpadapter.LoadOpenAPI(context.Background())
	if err != nil {
		log.Fatalf("Error loading API description: %v", err)
	}
	if err := httpadapter.RegisterDocs(e, doc); err != nil {
		log.Fatalf("Error registering API docs: %v", err)
	}

	return e
}
