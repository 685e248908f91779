package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelReservationHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/create_reservation"
	createReviewHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/create_review"
	deleteReviewHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/delete_review"
	getAvailabilityHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/get_availability"
	getFieldHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/get_field"
	getFieldReviewsHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/get_field_reviews"
	getFieldsHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/get_fields"
	getReservationHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/get_user_reservations"
	loginHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/register"
	updateReviewHandler "github.com/m04kA/HSB-ReservationService/internal/api/handlers/update_review"
	"github.com/m04kA/HSB-ReservationService/internal/api/middleware"
	"github.com/m04kA/HSB-ReservationService/internal/config"
	"github.com/m04kA/HSB-ReservationService/internal/infra/cache"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	authService "github.com/m04kA/HSB-ReservationService/internal/service/auth"
	fieldsService "github.com/m04kA/HSB-ReservationService/internal/service/fields"
	reservationsService "github.com/m04kA/HSB-ReservationService/internal/service/reservations"
	reviewsService "github.com/m04kA/HSB-ReservationService/internal/service/reviews"
	"github.com/m04kA/HSB-ReservationService/internal/transform"
	createReservationUC "github.com/m04kA/HSB-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/HSB-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/HSB-ReservationService/pkg/logger"
	"github.com/m04kA/HSB-ReservationService/pkg/metrics"
)

func main() {
	// Подхватываем .env, если он есть (секреты для локального запуска)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HSB-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона политики слотов: все календарные вычисления идут в ней
	loc := cfg.Policy.Location()
	log.Info("Slot policy timezone: %s", cfg.Policy.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем клиента Saha API
	var upstreamMetrics sahaapi.MetricsObserver
	var cacheMetrics cache.MetricsObserver
	if cfg.Metrics.Enabled {
		upstreamMetrics = metricsCollector
		cacheMetrics = metricsCollector
	}

	sahaClient := sahaapi.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		cfg.Backend.RateLimitRPS,
		cfg.Backend.RateLimitBurst,
		upstreamMetrics,
		log,
	)
	log.Info("Saha API client initialized (url=%s, timeout=%ds, rate=%.0f rps)",
		cfg.Backend.URL, cfg.Backend.Timeout, cfg.Backend.RateLimitRPS)

	// Инициализируем кеш и нормализацию
	store := cache.New(
		rdb,
		time.Duration(cfg.Redis.FieldTTL)*time.Second,
		time.Duration(cfg.Redis.ReservationTTL)*time.Second,
		time.Duration(cfg.Redis.ReviewTTL)*time.Second,
		cacheMetrics,
		log,
	)
	transformer := transform.New(loc, cfg.Policy.PremiumPriceThreshold, log)

	// Инициализируем сервисы
	fieldsSvc := fieldsService.NewService(sahaClient, store, transformer, log)
	reservationsSvc := reservationsService.NewService(
		sahaClient,
		store,
		transformer,
		loc,
		cfg.Policy.CancelNoticeHours,
		cfg.Policy.EditNoticeHours,
		log,
	)
	reviewsSvc := reviewsService.NewService(sahaClient, store, store, transformer, log)
	authSvc := authService.NewService(sahaClient, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(fieldsSvc, loc, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		fieldsSvc,
		sahaClient,
		store,
		transformer,
		loc,
		log,
	)

	// Инициализируем handlers
	getFields := getFieldsHandler.NewHandler(fieldsSvc, log)
	getField := getFieldHandler.NewHandler(fieldsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, loc, log)
	getFieldReviews := getFieldReviewsHandler.NewHandler(reviewsSvc, log)
	createReservation := createReservationHandler.NewHandler(
		createReservationUseCase, loc, cfg.Policy.CancelNoticeHours, cfg.Policy.EditNoticeHours, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	updateReview := updateReviewHandler.NewHandler(reviewsSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewsSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// Витрина полей
	api.HandleFunc("/fields", getFields.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}", getField.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}/reviews", getFieldReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{reviewId}", updateReview.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reviews/{reviewId}", deleteReview.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
