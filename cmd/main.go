package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createQuoteHandler "github.com/Testforever-git/VMS-RentalService/internal/api/handlers/create_quote"
	getCustomerBookingsHandler "github.com/Testforever-git/VMS-RentalService/internal/api/handlers/get_customer_bookings"
	getQuoteHandler "github.com/Testforever-git/VMS-RentalService/internal/api/handlers/get_quote"
	getRentalOptionsHandler "github.com/Testforever-git/VMS-RentalService/internal/api/handlers/get_rental_options"
	"github.com/Testforever-git/VMS-RentalService/internal/api/middleware"
	"github.com/Testforever-git/VMS-RentalService/internal/config"
	bookingRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/booking"
	catalogRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/catalog"
	storeRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/store"
	vehicleRepo "github.com/Testforever-git/VMS-RentalService/internal/infra/storage/vehicle"
	bookingsService "github.com/Testforever-git/VMS-RentalService/internal/service/bookings"
	createQuoteUC "github.com/Testforever-git/VMS-RentalService/internal/usecase/create_quote"
	getRentalOptionsUC "github.com/Testforever-git/VMS-RentalService/internal/usecase/get_rental_options"
	"github.com/Testforever-git/VMS-RentalService/pkg/dbmetrics"
	"github.com/Testforever-git/VMS-RentalService/pkg/logger"
	"github.com/Testforever-git/VMS-RentalService/pkg/metrics"
)

func main() {
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

	log.Info("Starting VMS-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	storeRepository := storeRepo.NewRepository(executor)
	vehicleRepository := vehicleRepo.NewRepository(executor)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		vehicleRepository,
		log,
	)

	// Инициализируем use cases
	createQuoteUseCase := createQuoteUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		storeRepository,
		vehicleRepository,
		log,
	)

	getRentalOptionsUseCase := getRentalOptionsUC.NewUseCase(
		catalogRepository,
		storeRepository,
		vehicleRepository,
		log,
	)

	// Инициализируем handlers
	createQuote := createQuoteHandler.NewHandler(createQuoteUseCase, log)
	getQuote := getQuoteHandler.NewHandler(bookingSvc, log)
	getRentalOptions := getRentalOptionsHandler.NewHandler(getRentalOptionsUseCase, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Присваиваем запросам ID для трассировки в логах
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Данные формы расчета аренды автомобиля
	api.HandleFunc("/vehicles/{vehicleId}/rental-options",
		getRentalOptions.Handle).Methods(http.MethodGet)

	// Выдача квоты по access token (сам токен и есть авторизация)
	api.HandleFunc("/rental-quotes/{token}", getQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Customer-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Расчет квоты и создание бронирования
	protected.HandleFunc("/rental-quotes", createQuote.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
