package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcatalog "github.com/bhavnakumari/ecommerce-microservices/internal/application/catalog"
	"github.com/bhavnakumari/ecommerce-microservices/internal/config"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/mongocatalog"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/observability/oteltrace"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/observability/prometrics"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/observability/telemetry"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/observability/zaplogger"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/stockclient"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
	"github.com/bhavnakumari/ecommerce-microservices/internal/pkg/logging"
	httppresentation "github.com/bhavnakumari/ecommerce-microservices/internal/presentation/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

const serviceName = "products"

func main() {
	cfg := config.LoadProducts()

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
			observability.MStockLookups: metrics.Counter(observability.MStockLookups,
				"Stock lookups against the inventory service by outcome.", "outcome"),
		},
		map[string]observability.Histogram{
			observability.MHTTPRequestDuration: metrics.Histogram(observability.MHTTPRequestDuration,
				"HTTP request duration in seconds.", prometheus.DefBuckets, "method", "route", "status"),
			observability.MStockLookupDuration: metrics.Histogram(observability.MStockLookupDuration,
				"Stock lookup duration in seconds.", prometheus.DefBuckets),
		},
	)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	client, err := mongo.Connect(connectCtx, mongooptions.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		systemLogger.Fatal("mongo_connect_failed", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	repo := mongocatalog.New(client.Database(cfg.MongoDB), cfg.MongoCollection)
	if err := repo.EnsureIndexes(connectCtx); err != nil {
		systemLogger.Fatal("mongo_ensure_indexes_failed", zap.Error(err))
	}

	fetcher := stockclient.New(cfg.InventoryBaseURL, cfg.StockLookupTimeout, tel)
	catalogService := appcatalog.NewService(repo, fetcher, tel, appcatalog.Options{
		ListLimit:   cfg.ListLimit,
		StockFanOut: cfg.StockFanOutLimit,
	})
	handler := httppresentation.NewProductsHandler(catalogService, zaplogger.Wrap(baseLogger), tel)

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
