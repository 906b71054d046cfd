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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/check_availability"
	createBookingHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/create_booking"
	getBookingHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/get_booking"
	getItemAvailabilityHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/get_item_availability"
	getItemBookingsHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/get_item_bookings"
	getUserBookingsHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/get_user_bookings"
	setItemAvailabilityHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/set_item_availability"
	updateStatusHandler "github.com/yagera/bazaar-mtuci/internal/api/handlers/update_booking_status"
	"github.com/yagera/bazaar-mtuci/internal/api/middleware"
	"github.com/yagera/bazaar-mtuci/internal/config"
	availabilityRepo "github.com/yagera/bazaar-mtuci/internal/infra/storage/availability"
	bookingRepo "github.com/yagera/bazaar-mtuci/internal/infra/storage/booking"
	itemServiceClient "github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
	"github.com/yagera/bazaar-mtuci/internal/integrations/notifysink"
	availabilityService "github.com/yagera/bazaar-mtuci/internal/service/availability"
	bookingsService "github.com/yagera/bazaar-mtuci/internal/service/bookings"
	checkAvailabilityUC "github.com/yagera/bazaar-mtuci/internal/usecase/check_availability"
	createBookingUC "github.com/yagera/bazaar-mtuci/internal/usecase/create_booking"
	updateStatusUC "github.com/yagera/bazaar-mtuci/internal/usecase/update_booking_status"
	"github.com/yagera/bazaar-mtuci/pkg/dbmetrics"
	"github.com/yagera/bazaar-mtuci/pkg/logger"
	"github.com/yagera/bazaar-mtuci/pkg/metrics"
	"github.com/yagera/bazaar-mtuci/pkg/simpletxmanager"
	"github.com/yagera/bazaar-mtuci/pkg/txmanager"
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

	log.Info("Starting booking service...")
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

	// Инициализируем Redis кэш для каталога объявлений (опционально)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// Кэш не критичен для работы сервиса
			log.Warn("Redis is unreachable, item cache disabled: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info("Item cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.ItemService.CacheTTL)
		}
	}

	// Инициализируем клиент каталога объявлений
	itemClient := itemServiceClient.NewClient(
		cfg.ItemService.URL,
		time.Duration(cfg.ItemService.Timeout)*time.Second,
		redisClient,
		time.Duration(cfg.ItemService.CacheTTL)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ItemService=%s timeout=%ds)",
		cfg.ItemService.URL, cfg.ItemService.Timeout)

	// Инициализируем отправку уведомлений
	type notificationSink interface {
		Send(ctx context.Context, n *notifysink.Notification) error
		Close() error
	}
	var notifySink notificationSink

	if cfg.Kafka.Enabled {
		notifySink = notifysink.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, 10*time.Second)
		log.Info("Notification producer initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		notifySink = notifysink.NewDiscard()
		log.Info("Notifications disabled")
	}
	defer notifySink.Close()

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		availRepository   *availabilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		itemClient,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availRepository,
		itemClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availRepository,
		itemClient,
		notifySink,
		txMgr,
		log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(
		bookingRepository,
		itemClient,
		notifySink,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		availRepository,
		itemClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(updateStatusUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getItemBookings := getItemBookingsHandler.NewHandler(bookingSvc, log)
	getItemAvailability := getItemAvailabilityHandler.NewHandler(availabilitySvc, log)
	setItemAvailability := setItemAvailabilityHandler.NewHandler(availabilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу присваивается идентификатор для трассировки
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Занятость объявления (активные бронирования без данных арендаторов)
	api.HandleFunc("/items/{itemId}/bookings", getItemBookings.Handle).Methods(http.MethodGet)

	// Календарь доступности объявления
	api.HandleFunc("/items/{itemId}/availability", getItemAvailability.Handle).Methods(http.MethodGet)

	// Проверка доступности диапазона без бронирования
	api.HandleFunc("/items/{itemId}/availability/check", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования (подтверждение, отклонение, завершение)
	protected.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Календарь доступности (для владельцев) ---
	protected.HandleFunc("/items/{itemId}/availability", setItemAvailability.Handle).Methods(http.MethodPut)

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
