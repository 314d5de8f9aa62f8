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

	assignTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/assign_table"
	cancelBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_booking"
	createTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_table"
	deleteBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_booking"
	deleteTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_table"
	getAvailableTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_tables"
	getBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking"
	getBookingByCodeHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking_by_code"
	getRestaurantBookingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_restaurant_bookings"
	getTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_tables"
	updateBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_booking_status"
	updateTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_table"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	seatingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/seating"
	bookingsService "github.com/m04kA/SMC-ReservationService/internal/service/bookings"
	seatingsService "github.com/m04kA/SMC-ReservationService/internal/service/seatings"
	assignTableUC "github.com/m04kA/SMC-ReservationService/internal/usecase/assign_table"
	createBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	getAvailableTablesUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_tables"
	updateBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-ReservationService...")
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
	var (
		bookingRepository    *bookingRepo.Repository
		seatingRepository    *seatingRepo.Repository
		restaurantRepository *restaurantRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	// TODO: вынести общий интерфейс в pkg, чтобы не объявлять его в main
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		seatingRepository = seatingRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		seatingRepository = seatingRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	seatingSvc := seatingsService.NewService(
		seatingRepository,
		restaurantRepository,
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		seatingRepository,
		restaurantRepository,
		txMgr,
		createBookingUC.Config{
			DiningDurationMinutes:  cfg.Booking.DiningDurationMinutes,
			AutoConfirmOnCreate:    cfg.Booking.AutoConfirmOnCreate,
			CodeGenerationAttempts: cfg.Booking.CodeGenerationAttempts,
		},
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		seatingRepository,
		txMgr,
		updateBookingUC.Config{
			DiningDurationMinutes: cfg.Booking.DiningDurationMinutes,
		},
		log,
	)

	assignTableUseCase := assignTableUC.NewUseCase(
		bookingRepository,
		seatingRepository,
		txMgr,
		assignTableUC.Config{
			DiningDurationMinutes: cfg.Booking.DiningDurationMinutes,
		},
		log,
	)

	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(
		bookingRepository,
		seatingRepository,
		restaurantRepository,
		txMgr,
		getAvailableTablesUC.Config{
			DiningDurationMinutes: cfg.Booking.DiningDurationMinutes,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	assignTable := assignTableHandler.NewHandler(assignTableUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingByCode := getBookingByCodeHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createTable := createTableHandler.NewHandler(seatingSvc, log)
	getTables := getTablesHandler.NewHandler(seatingSvc, log)
	updateTable := updateTableHandler.NewHandler(seatingSvc, log)
	deleteTable := deleteTableHandler.NewHandler(seatingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу - идентификатор для трассировки в логах
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

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Поиск бронирования по коду подтверждения
	// Регистрируется раньше /bookings/{bookingId}, чтобы by-code не матчился как ID
	api.HandleFunc("/bookings/by-code/{code}", getBookingByCode.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос бронирования (дата, время, размер группы, заметки)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Перевод бронирования по жизненному циклу
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Назначение/смена столика
	api.HandleFunc("/bookings/{bookingId}/table", assignTable.Handle).Methods(http.MethodPatch)

	// Удаление записи о бронировании (операционные задачи администратора)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Рестораны ---
	// Список бронирований ресторана с фильтрами
	api.HandleFunc("/restaurants/{restaurantId}/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)

	// Подбор свободных столиков
	api.HandleFunc("/restaurants/{restaurantId}/available-tables", getAvailableTables.Handle).Methods(http.MethodGet)

	// --- Столики ---
	// Создание столика
	api.HandleFunc("/restaurants/{restaurantId}/tables", createTable.Handle).Methods(http.MethodPost)

	// Каталог столиков ресторана
	api.HandleFunc("/restaurants/{restaurantId}/tables", getTables.Handle).Methods(http.MethodGet)

	// Изменение столика
	api.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPatch)

	// Удаление столика
	api.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

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
