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

	addCommentHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/add_comment"
	approveBookingHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/approve_booking"
	createBookingHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/create_booking"
	createItemHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/create_item"
	createRequestHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/create_request"
	createUserHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/create_user"
	deleteItemHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/delete_item"
	deleteUserHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/delete_user"
	getAllRequestsHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_all_requests"
	getBookerBookingsHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_booker_bookings"
	getBookingHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_booking"
	getItemHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_item"
	getOwnRequestsHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_own_requests"
	getOwnerBookingsHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_owner_bookings"
	getRequestHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_request"
	getUserHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_user"
	getUserItemsHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/get_user_items"
	listUsersHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/list_users"
	searchItemsHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/search_items"
	updateItemHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/update_item"
	updateUserHandler "github.com/EvgeniyTomilov/shareit/internal/api/handlers/update_user"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	"github.com/EvgeniyTomilov/shareit/internal/config"
	bookingRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/booking"
	commentRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/comment"
	itemRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/item"
	requestRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/request"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	bookingsService "github.com/EvgeniyTomilov/shareit/internal/service/bookings"
	itemsService "github.com/EvgeniyTomilov/shareit/internal/service/items"
	requestsService "github.com/EvgeniyTomilov/shareit/internal/service/requests"
	usersService "github.com/EvgeniyTomilov/shareit/internal/service/users"
	approveBookingUC "github.com/EvgeniyTomilov/shareit/internal/usecase/approve_booking"
	createBookingUC "github.com/EvgeniyTomilov/shareit/internal/usecase/create_booking"
	"github.com/EvgeniyTomilov/shareit/pkg/dbmetrics"
	"github.com/EvgeniyTomilov/shareit/pkg/logger"
	"github.com/EvgeniyTomilov/shareit/pkg/metrics"
	"github.com/EvgeniyTomilov/shareit/pkg/simpletxmanager"
	"github.com/EvgeniyTomilov/shareit/pkg/txmanager"
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

	log.Info("Starting ShareIt...")
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
		bookingRepository *bookingRepo.Repository
		itemRepository    *itemRepo.Repository
		userRepository    *userRepo.Repository
		commentRepository *commentRepo.Repository
		requestRepository *requestRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		itemRepository = itemRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		commentRepository = commentRepo.NewRepository(wrappedDB)
		requestRepository = requestRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		itemRepository = itemRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		commentRepository = commentRepo.NewRepository(db)
		requestRepository = requestRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		itemRepository,
		userRepository,
		log,
	)
	itemSvc := itemsService.NewService(
		itemRepository,
		bookingRepository,
		commentRepository,
		userRepository,
		requestRepository,
		log,
	)
	userSvc := usersService.NewService(userRepository, log)
	requestSvc := requestsService.NewService(
		requestRepository,
		itemRepository,
		userRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		itemRepository,
		userRepository,
		txMgr,
		log,
	)
	approveBookingUseCase := approveBookingUC.NewUseCase(
		bookingRepository,
		itemRepository,
		userRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	approveBooking := approveBookingHandler.NewHandler(approveBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookerBookings := getBookerBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)

	createItem := createItemHandler.NewHandler(itemSvc, log)
	updateItem := updateItemHandler.NewHandler(itemSvc, log)
	getItem := getItemHandler.NewHandler(itemSvc, log)
	getUserItems := getUserItemsHandler.NewHandler(itemSvc, log)
	searchItems := searchItemsHandler.NewHandler(itemSvc, log)
	deleteItem := deleteItemHandler.NewHandler(itemSvc, log)
	addComment := addCommentHandler.NewHandler(itemSvc, log)

	createUser := createUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	createRequest := createRequestHandler.NewHandler(requestSvc, log)
	getOwnRequests := getOwnRequestsHandler.NewHandler(requestSvc, log)
	getAllRequests := getAllRequestsHandler.NewHandler(requestSvc, log)
	getRequest := getRequestHandler.NewHandler(requestSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Вызывающий пользователь передается в заголовке X-Sharer-User-Id
	r.Use(middleware.Auth)

	// --- Пользователи ---
	r.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	r.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", updateUser.Handle).Methods(http.MethodPatch)
	r.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// --- Вещи ---
	r.HandleFunc("/items", createItem.Handle).Methods(http.MethodPost)
	r.HandleFunc("/items", getUserItems.Handle).Methods(http.MethodGet)
	r.HandleFunc("/items/search", searchItems.Handle).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId}", getItem.Handle).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId}", updateItem.Handle).Methods(http.MethodPatch)
	r.HandleFunc("/items/{itemId}", deleteItem.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/items/{itemId}/comment", addComment.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	r.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings", getBookerBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/owner", getOwnerBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}", approveBooking.Handle).Methods(http.MethodPatch)

	// --- Запросы вещей ---
	r.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)
	r.HandleFunc("/requests", getOwnRequests.Handle).Methods(http.MethodGet)
	r.HandleFunc("/requests/all", getAllRequests.Handle).Methods(http.MethodGet)
	r.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

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
