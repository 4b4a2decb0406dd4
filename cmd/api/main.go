package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/codeforher/backend/internal/pkg/config"
	"github.com/codeforher/backend/internal/pkg/database"
	"github.com/codeforher/backend/internal/pkg/health"
	"github.com/codeforher/backend/internal/pkg/logger"
	"github.com/codeforher/backend/internal/pkg/middleware"
	natspkg "github.com/codeforher/backend/internal/pkg/nats"
	nrpkg "github.com/codeforher/backend/internal/pkg/newrelic"
	accountHandler "github.com/codeforher/backend/services/account/handler"
	accountHTTP "github.com/codeforher/backend/services/account/handler/http"
	accountRepository "github.com/codeforher/backend/services/account/repository"
	accountUsecase "github.com/codeforher/backend/services/account/usecase"
	commuteGateway "github.com/codeforher/backend/services/commute/gateway"
	commuteHandler "github.com/codeforher/backend/services/commute/handler"
	commuteHTTP "github.com/codeforher/backend/services/commute/handler/http"
	commuteRepository "github.com/codeforher/backend/services/commute/repository"
	commuteUsecase "github.com/codeforher/backend/services/commute/usecase"
	mapsGateway "github.com/codeforher/backend/services/maps/gateway"
	mapsHandler "github.com/codeforher/backend/services/maps/handler"
	mapsHTTP "github.com/codeforher/backend/services/maps/handler/http"
	mapsUsecase "github.com/codeforher/backend/services/maps/usecase"
	sosGateway "github.com/codeforher/backend/services/sos/gateway"
	sosHandler "github.com/codeforher/backend/services/sos/handler"
	sosHTTP "github.com/codeforher/backend/services/sos/handler/http"
	sosRepository "github.com/codeforher/backend/services/sos/repository"
	sosUsecase "github.com/codeforher/backend/services/sos/usecase"
)

func main() {
	appName := "codeforher-api"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Account service
	accountRepo := accountRepository.NewAccountRepo(configs, postgresClient.GetDB(), redisClient)
	accountUC := accountUsecase.NewAccountUC(accountRepo, configs)
	accountH := accountHandler.NewHandler(
		accountHTTP.NewAuthHandler(accountUC),
		accountHTTP.NewUserHandler(accountUC),
		configs,
	)

	// Commute service
	commuteRepo := commuteRepository.NewCommuteRepo(configs, postgresClient.GetDB())
	commuteGW := commuteGateway.NewCommuteGW(natsClient)
	commuteUC := commuteUsecase.NewCommuteUC(commuteRepo, commuteGW, configs)
	commuteH := commuteHandler.NewHandler(commuteHTTP.NewTripHandler(commuteUC), configs)

	// SOS service
	sosRepo := sosRepository.NewSOSRepo(configs, postgresClient.GetDB())
	smsGW := sosGateway.NewTwilioGateway(configs.Twilio)
	sosGW := sosGateway.NewSOSGW(natsClient)
	sosUC := sosUsecase.NewSOSUC(sosRepo, accountRepo, smsGW, sosGW, configs)
	sosH := sosHandler.NewHandler(sosHTTP.NewSOSHandler(sosUC), configs)

	// Maps service
	providerGW := mapsGateway.NewProviderGW(configs.Maps)
	llmGW := mapsGateway.NewLLMGW(configs.LLM)
	mapsUC := mapsUsecase.NewMapsUC(providerGW, llmGW, redisClient, configs)
	mapsH := mapsHandler.NewHandler(mapsHTTP.NewMapsHandler(mapsUC), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	api := e.Group("/api")
	accountH.RegisterRoutes(api)
	commuteH.RegisterRoutes(api)
	sosH.RegisterRoutes(api)
	mapsH.RegisterRoutes(api)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
