package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/config"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/database"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/health"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/middleware"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/nats"
	nrpkg "github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/newrelic"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
	billingrepo "github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing/repository"
	billinguc "github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing/usecase"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/dispatch"
	dispatchhttp "github.com/isikjon/taxi.wazir-fastapi-sub000/services/dispatch/handler/http"
	driversrepo "github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers/repository"
	driversuc "github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers/usecase"
	matchrepo "github.com/isikjon/taxi.wazir-fastapi-sub000/services/match/repository"
	matchuc "github.com/isikjon/taxi.wazir-fastapi-sub000/services/match/usecase"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides"
	ridesgw "github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides/gateway"
	ridesrepo "github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides/repository"
	ridesuc "github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	if err := postgresClient.Migrate(context.Background()); err != nil {
		zapLogger.Fatal("Failed to apply migrations", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	presenceTTL := time.Duration(configs.Dispatch.PresenceTTLSec) * time.Second

	sqlStore := store.NewSQLStore(postgresClient.GetDB(), configs.Dispatch.TransactionRetries)
	rideRepo := ridesrepo.NewRideRepo()
	driverRepo := ridesrepo.NewDriverRepo()
	billingRepo := billingrepo.NewBillingRepo()
	presenceRepo := driversrepo.NewPresenceRepo(redisClient, presenceTTL)
	candidateRepo := matchrepo.NewCandidateRepo(postgresClient.GetDB(), redisClient, presenceRepo, presenceTTL)

	rideGW := ridesgw.NewRideGW(natsClient)

	presenceUC := driversuc.NewPresenceUC(configs, presenceRepo)
	settlementUC := billinguc.NewSettlementUC(configs, billingRepo)
	policy := matchuc.NewProximityPolicy(configs, candidateRepo)
	rideUC := ridesuc.NewRideUC(configs, sqlStore, rideRepo, driverRepo, policy, settlementUC, presenceUC, rideGW)

	facade := dispatch.NewFacade(rideUC, presenceUC)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))

	mw := middleware.New(configs)

	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient.GetConn()))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	ridesHandler := dispatchhttp.NewRidesHandler(facade)
	driversHandler := dispatchhttp.NewDriversHandler(facade)
	dispatchhttp.RegisterRoutes(e, mw, ridesHandler, driversHandler)

	// Offer sweep runs for the life of the process
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go runOfferSweeper(sweepCtx, rideUC, time.Duration(configs.Dispatch.SweepIntervalSec)*time.Second)

	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		logger.Info("HTTP server listening", logger.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	stopSweep()

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server cleanly", logger.Err(err))
	}
}

// runOfferSweeper reverts expired offers on a fixed interval until ctx is done
func runOfferSweeper(ctx context.Context, rideUC rides.RideUC, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Offer sweeper started", logger.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Offer sweeper stopped")
			return
		case <-ticker.C:
			if _, err := rideUC.SweepExpiredOffers(ctx); err != nil {
				logger.Error("Offer sweep failed", logger.Err(err))
			}
		}
	}
}
