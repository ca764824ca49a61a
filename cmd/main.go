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

	cancelBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_booking"
	createPreferenceHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_payment_preference"
	createTournamentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_tournament"
	deleteTournamentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/delete_tournament"
	getMeHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_me"
	listBookingsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_bookings"
	listCourtsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_courts"
	listMyRegistrationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_my_registrations"
	listTournamentsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_tournaments"
	loginHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/login"
	paymentWebhookHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/payment_webhook"
	registerHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/register"
	registerTournamentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/register_tournament"
	updateTournamentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_tournament"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	tournamentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/tournament"
	userRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtService/internal/integrations/mercadopago"
	"github.com/m04kA/SMC-CourtService/internal/integrations/telegram"
	authService "github.com/m04kA/SMC-CourtService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-CourtService/internal/service/bookings"
	courtsService "github.com/m04kA/SMC-CourtService/internal/service/courts"
	tournamentsService "github.com/m04kA/SMC-CourtService/internal/service/tournaments"
	confirmPaymentUC "github.com/m04kA/SMC-CourtService/internal/usecase/confirm_payment"
	createBookingUC "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
	initiatePaymentUC "github.com/m04kA/SMC-CourtService/internal/usecase/initiate_payment"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtService...")
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

	// Инициализируем интеграционных клиентов
	mpClient := mercadopago.NewClient(
		cfg.MercadoPago.BaseURL,
		cfg.MercadoPago.AccessToken,
		time.Duration(cfg.MercadoPago.Timeout)*time.Second,
		log,
	)
	log.Info("Mercado Pago client initialized (base=%s timeout=%ds)",
		cfg.MercadoPago.BaseURL, cfg.MercadoPago.Timeout)

	notifier, err := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
	if err != nil {
		log.Fatal("Failed to initialize Telegram notifier: %v", err)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		courtRepository      *courtRepo.Repository
		userRepository       *userRepo.Repository
		paymentRepository    *paymentRepo.Repository
		tournamentRepository *tournamentRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		tournamentRepository = tournamentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		tournamentRepository = tournamentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	courtSvc := courtsService.NewService(courtRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	tournamentSvc := tournamentsService.NewService(tournamentRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		notifier,
		txMgr,
		log,
	)

	initiatePaymentUseCase := initiatePaymentUC.NewUseCase(
		paymentRepository,
		bookingRepository,
		courtRepository,
		mpClient,
		cfg.URLs.Frontend,
		cfg.URLs.Backend,
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		paymentRepository,
		bookingRepository,
		courtRepository,
		userRepository,
		mpClient,
		notifier,
		txMgr,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler(authSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	createPreference := createPreferenceHandler.NewHandler(initiatePaymentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(confirmPaymentUseCase, log)
	listTournaments := listTournamentsHandler.NewHandler(tournamentSvc, log)
	createTournament := createTournamentHandler.NewHandler(tournamentSvc, log)
	updateTournament := updateTournamentHandler.NewHandler(tournamentSvc, log)
	deleteTournament := deleteTournamentHandler.NewHandler(tournamentSvc, log)
	registerTournament := registerTournamentHandler.NewHandler(tournamentSvc, log)
	listMyRegistrations := listMyRegistrationsHandler.NewHandler(tournamentSvc, log)

	authMw := middleware.NewAuth(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Список квадр
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)

	// Webhook платежного процессора
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// Занятость квадры публичная, остальные режимы требуют токен
	api.Handle("/bookings", authMw.Optional(http.HandlerFunc(listBookings.Handle))).Methods(http.MethodGet)

	// Список турниров
	api.HandleFunc("/tournaments", listTournaments.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMw.Require)

	// --- Профиль ---
	protected.HandleFunc("/me", getMe.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Платежи ---
	protected.HandleFunc("/payments/create-preference", createPreference.Handle).Methods(http.MethodPost)

	// --- Турниры ---
	protected.HandleFunc("/tournaments", createTournament.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tournaments/admin", listTournaments.HandleAdmin).Methods(http.MethodGet)
	protected.HandleFunc("/tournaments/registrations/me", listMyRegistrations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tournaments/{tournamentId}", updateTournament.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/tournaments/{tournamentId}", deleteTournament.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/tournaments/{tournamentId}/register", registerTournament.Handle).Methods(http.MethodPost)

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
