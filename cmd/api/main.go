package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"sweaty/internal/adapter/api"
	"sweaty/internal/adapter/api/handler"
	apimiddleware "sweaty/internal/adapter/api/middleware"
	"sweaty/internal/adapter/api/router"
	"sweaty/internal/adapter/repository"
	"sweaty/internal/infrastructure/anthropic"
	"sweaty/internal/infrastructure/firebase"
	"sweaty/internal/infrastructure/igdb"
	"sweaty/internal/infrastructure/ratelimit"
	"sweaty/internal/usecase"
	"sweaty/pkg/config"
	"sweaty/pkg/logger"
	"sweaty/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := igdb.NewClient(igdb.Config{
		ClientID:     cfg.TwitchClientID,
		ClientSecret: cfg.TwitchClientSecret,
	})
	if cfg.TwitchClientID == "" || cfg.TwitchClientSecret == "" {
		logger.Warn("TWITCH_CLIENT_ID / TWITCH_CLIENT_SECRET not set, catalog calls will fail")
	}

	var completion usecase.CompletionClient
	if client := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel); client != nil {
		completion = client
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set, recommendations are disabled")
	}

	gameUseCase := usecase.NewGameUseCase(catalog)
	recommendationUseCase := usecase.NewRecommendationUseCase(catalog, completion)

	var (
		curatedCacheUseCase *usecase.CuratedCacheUseCase
		authMiddleware      *apimiddleware.AuthMiddleware
		adminMiddleware     *apimiddleware.AdminMiddleware
	)

	if cfg.FirebaseEnabled() {
		firebaseAuthClient, firestoreClient, err := initFirebase(ctx, cfg)
		if err != nil {
			logger.Error("Failed to initialize Firebase: %v", err)
			os.Exit(1)
		}
		defer firestoreClient.Close()

		cacheRepo := repository.NewFirestoreGameCacheRepository(firestoreClient)
		curatedCacheUseCase = usecase.NewCuratedCacheUseCase(cacheRepo, catalog)

		authMiddleware = apimiddleware.NewAuthMiddleware(firebaseAuthClient)
		adminMiddleware = apimiddleware.NewAdminMiddleware()
	}

	handler.Setup(gameUseCase, recommendationUseCase, curatedCacheUseCase)

	aiLimiter := ratelimit.NewRateLimiter(cfg.AIRateLimitPerMinute)
	aiLimiter.StartCleanupRoutine(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Validator = api.NewValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("%s %s %d %v request_id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, authMiddleware, adminMiddleware, aiLimiter)

	go func() {
		logger.Info("Starting server on port %s (%s)...", cfg.ServerPort, cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}

func initFirebase(ctx context.Context, cfg *config.Config) (*firebase.FirebaseAuthClient, *firestore.Client, error) {
	var opts []option.ClientOption
	switch {
	case cfg.FirebaseCredentialsJSON != "":
		logger.Info("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON)))
	case cfg.FirebaseCredentialsPath != "":
		if _, err := os.Stat(cfg.FirebaseCredentialsPath); err != nil {
			return nil, nil, err
		}
		logger.Info("Using Firebase service account from file: %s", cfg.FirebaseCredentialsPath)
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
	default:
		logger.Info("Using application default credentials for Firebase")
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		return nil, nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, err
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		return nil, nil, err
	}

	return firebase.NewFirebaseAuthClient(authClient), firestoreClient, nil
}
