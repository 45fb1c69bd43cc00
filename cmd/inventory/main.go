package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	appstock "github.com/bhavnakumari/ecommerce-microservices/internal/application/stock"
	"github.com/bhavnakumari/ecommerce-microservices/internal/config"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/observability/oteltrace"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/observability/prometrics"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/observability/telemetry"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/observability/zaplogger"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/redisledger"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
	"github.com/bhavnakumari/ecommerce-microservices/internal/pkg/logging"
	httppresentation "github.com/bhavnakumari/ecommerce-microservices/internal/presentation/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

const serviceName = "inventory"

func main() {
	cfg := config.LoadInventory()

	baseLogger := logging.Must(serviceName, cfg.Env)
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)
	systemLogger := logging.System(baseLogger)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	metrics := prometrics.New("", serviceName)
	tel := telemetry.New(
		oteltrace.New(serviceName),
		zaplogger.Wrap(baseLogger),
		map[string]observability.Counter{
			observability.MHTTPRequests: metrics.Counter(observability.MHTTPRequests,
				"Total number of HTTP requests.", "method", "route", "status"),
		},
		map[string]observability.Histogram{
			observability.MHTTPRequestDuration: metrics.Histogram(observability.MHTTPRequestDuration,
				"HTTP request duration in seconds.", prometheus.DefBuckets, "method", "route", "status"),
		},
	)

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		systemLogger.Fatal("redis_url_invalid", zap.Error(err))
	}
	rdb := redis.NewClient(opts)
	defer func() { _ = rdb.Close() }()

	stockService := appstock.NewService(redisledger.New(rdb), tel)
	handler := httppresentation.NewInventoryHandler(stockService, zaplogger.Wrap(baseLogger), tel)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handler.Router())

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		systemLogger.Info("http_server_start",
			zap.String("addr", server.Addr),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			systemLogger.Error("http_server_error",
				zap.Error(err),
			)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		systemLogger.Error("http_server_shutdown_error",
			zap.Error(err),
		)
	} else {
		systemLogger.Info("http_server_stopped")
	}
}
