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

	adminLoginHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/admin_logout"
	cancelBookingHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/cancel_booking"
	chargeNoShowHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/charge_no_show"
	confirmBookingHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/get_booking"
	getSettingsHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/list_bookings"
	rescheduleBookingHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/reschedule_booking"
	stripeWebhookHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/stripe_webhook"
	updateSettingsHandler "github.com/quesarica/QR-BookingService/internal/api/handlers/update_settings"
	"github.com/quesarica/QR-BookingService/internal/api/middleware"
	"github.com/quesarica/QR-BookingService/internal/config"
	adminSessionRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/adminsession"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	settingsRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/settings"
	"github.com/quesarica/QR-BookingService/internal/integrations/notifier"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
	adminAuthService "github.com/quesarica/QR-BookingService/internal/service/adminauth"
	bookingsService "github.com/quesarica/QR-BookingService/internal/service/bookings"
	settingsService "github.com/quesarica/QR-BookingService/internal/service/settings"
	cancelBookingUC "github.com/quesarica/QR-BookingService/internal/usecase/cancel_booking"
	chargeNoShowUC "github.com/quesarica/QR-BookingService/internal/usecase/charge_no_show"
	confirmPaymentUC "github.com/quesarica/QR-BookingService/internal/usecase/confirm_payment"
	createBookingUC "github.com/quesarica/QR-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/quesarica/QR-BookingService/internal/usecase/get_availability"
	rescheduleBookingUC "github.com/quesarica/QR-BookingService/internal/usecase/reschedule_booking"
	"github.com/quesarica/QR-BookingService/pkg/dbmetrics"
	"github.com/quesarica/QR-BookingService/pkg/logger"
	"github.com/quesarica/QR-BookingService/pkg/metrics"
	"github.com/quesarica/QR-BookingService/pkg/simpletxmanager"
	"github.com/quesarica/QR-BookingService/pkg/txmanager"
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

	log.Info("Starting QR-BookingService...")
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

	// Инициализируем клиента платежного провайдера
	paymentsClient := payments.NewClient(
		cfg.Stripe.APIURL,
		cfg.Stripe.SecretKey,
		time.Duration(cfg.Stripe.Timeout)*time.Second,
		log,
	)
	log.Info("Payments client initialized (url=%s timeout=%ds)", cfg.Stripe.APIURL, cfg.Stripe.Timeout)

	// Инициализируем издателя уведомлений
	notif, err := notifier.New(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
	if err != nil {
		log.Fatal("Failed to connect to notification broker: %v", err)
	}
	defer notif.Close()
	log.Info("Notification publisher initialized (exchange=%s)", cfg.RabbitMQ.Exchange)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		settingsRepository *settingsRepo.Repository
		sessionRepository  *adminSessionRepo.Repository
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
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		sessionRepository = adminSessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		sessionRepository = adminSessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, settingsRepository, notif, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	authSvc := adminAuthService.NewService(
		sessionRepository,
		cfg.Admin.Password,
		time.Duration(cfg.Admin.SessionTTLHours)*time.Hour,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		paymentsClient,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		paymentsClient,
		notif,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		paymentsClient,
		notif,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		txMgr,
		notif,
		log,
	)
	chargeNoShowUseCase := chargeNoShowUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		paymentsClient,
		notif,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(confirmPaymentUseCase, cfg.Stripe.WebhookSecret, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	chargeNoShow := chargeNoShowHandler.NewHandler(chargeNoShowUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Доступность календаря на месяц
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Self-service по токенам из письма
	api.HandleFunc("/bookings/manage/{token}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/manage/{token}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/manage/{token}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// Вебхук платежного провайдера
	api.HandleFunc("/payments/webhook", stripeWebhook.Handle).Methods(http.MethodPost)

	// Вход владельца
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.HandleAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/charge-no-show", chargeNoShow.Handle).Methods(http.MethodPost)

	// --- Настройки политик ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
