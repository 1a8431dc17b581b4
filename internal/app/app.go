package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/config"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/delivery/httpd"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/middleware"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/service"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/service/integration"
)

type App struct {
	server *http.Server
	logger zerolog.Logger
	config *config.Config
}

func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	// Создаем интеграционные клиенты
	detectorClient := integration.NewDetectorClient(cfg.Services.Timeout, log)
	openaiClient := integration.NewOpenAIClient(cfg.OpenAI, log)

	// Создаем сервисы
	summarizer := service.NewSummarizer(openaiClient, log)
	checkService := service.NewCheckService(detectorClient, summarizer, cfg.Services, log)
	rephraseService := service.NewRephraseService(detectorClient, openaiClient, checkService, cfg.Services, log)

	// Создаем обработчики
	handler := httpd.NewHandler(checkService, rephraseService, cfg.Server.MaxUploadSize, log)

	// Создаем роутер
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server: server,
		logger: log,
		config: cfg,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting checker service on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down checker service...")
	return a.server.Shutdown(ctx)
}
