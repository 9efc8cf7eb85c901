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

	createDraftHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/create_draft"
	discardDraftHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/discard_draft"
	getBookingHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/get_booking"
	getBookingChangesHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/get_booking_changes"
	getCostSummaryHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/get_cost_summary"
	getDraftHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/get_draft"
	promoteDraftHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/promote_draft"
	updateDraftDatesHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/update_draft_dates"
	updateDraftRatesHandler "github.com/vlkhvnn/PCM-PricingService/internal/api/handlers/update_draft_rates"
	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	"github.com/vlkhvnn/PCM-PricingService/internal/config"
	bookingRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/booking"
	draftRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/draft"
	proServiceClient "github.com/vlkhvnn/PCM-PricingService/internal/integrations/proservice"
	taxServiceClient "github.com/vlkhvnn/PCM-PricingService/internal/integrations/taxservice"
	userServiceClient "github.com/vlkhvnn/PCM-PricingService/internal/integrations/userservice"
	bookingsService "github.com/vlkhvnn/PCM-PricingService/internal/service/bookings"
	costingService "github.com/vlkhvnn/PCM-PricingService/internal/service/costing"
	draftsService "github.com/vlkhvnn/PCM-PricingService/internal/service/drafts"
	createDraftUC "github.com/vlkhvnn/PCM-PricingService/internal/usecase/create_draft"
	promoteDraftUC "github.com/vlkhvnn/PCM-PricingService/internal/usecase/promote_draft"
	summarizeCostUC "github.com/vlkhvnn/PCM-PricingService/internal/usecase/summarize_cost"
	updateDraftDatesUC "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_dates"
	updateDraftRatesUC "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_rates"
	"github.com/vlkhvnn/PCM-PricingService/pkg/dbmetrics"
	"github.com/vlkhvnn/PCM-PricingService/pkg/logger"
	"github.com/vlkhvnn/PCM-PricingService/pkg/metrics"
	"github.com/vlkhvnn/PCM-PricingService/pkg/simpletxmanager"
	"github.com/vlkhvnn/PCM-PricingService/pkg/txmanager"
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

	log.Info("Starting PCM-PricingService...")
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
	proClient := proServiceClient.NewClient(
		cfg.ProService.URL,
		time.Duration(cfg.ProService.Timeout)*time.Second,
		log,
	)
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	taxClient := taxServiceClient.NewClient(
		cfg.TaxService.URL,
		time.Duration(cfg.TaxService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ProService=%s, UserService=%s, TaxService=%s)",
		cfg.ProService.URL, cfg.UserService.URL, cfg.TaxService.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		draftRepository   *draftRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		draftRepository = draftRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		draftRepository = draftRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	costingSvc := costingService.NewService(userClient, proClient, taxClient, log)
	draftsSvc := draftsService.NewService(draftRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, draftRepository, log)

	// Инициализируем use cases
	createDraftUseCase := createDraftUC.NewUseCase(draftRepository, proClient, txMgr, log)
	updateDraftDatesUseCase := updateDraftDatesUC.NewUseCase(draftRepository, proClient, costingSvc, txMgr, log)
	updateDraftRatesUseCase := updateDraftRatesUC.NewUseCase(draftRepository, proClient, costingSvc, txMgr, log)
	promoteDraftUseCase := promoteDraftUC.NewUseCase(draftRepository, bookingRepository, txMgr, log)
	summarizeCostUseCase := summarizeCostUC.NewUseCase(draftRepository, costingSvc, log)

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(createDraftUseCase, log)
	updateDraftDates := updateDraftDatesHandler.NewHandler(updateDraftDatesUseCase, log)
	updateDraftRates := updateDraftRatesHandler.NewHandler(updateDraftRatesUseCase, log)
	promoteDraft := promoteDraftHandler.NewHandler(promoteDraftUseCase, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	discardDraft := discardDraftHandler.NewHandler(draftsSvc, log)
	getCostSummary := getCostSummaryHandler.NewHandler(summarizeCostUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getBookingChanges := getBookingChangesHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все ручки требуют X-User-ID header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Черновики ---
	// Создание черновика (заменяет прежний активный черновик пары)
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)

	// Получение и отбрасывание черновика
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}", discardDraft.Handle).Methods(http.MethodDelete)

	// Пересчёт дат: сверка occurrences и пересчёт стоимости
	api.HandleFunc("/drafts/{draftId}/dates", updateDraftDates.Handle).Methods(http.MethodPatch)

	// Правка ставок: переключатели услуг, переопределения, питомцы
	api.HandleFunc("/drafts/{draftId}/rates", updateDraftRates.Handle).Methods(http.MethodPatch)

	// Промоушен черновика в подтверждённое бронирование
	api.HandleFunc("/drafts/{draftId}/promote", promoteDraft.Handle).Methods(http.MethodPost)

	// Свежая сводка стоимости без записи
	api.HandleFunc("/drafts/{draftId}/cost-summary", getCostSummary.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Получение подтверждённого бронирования
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Сравнение бронирования с черновиком
	api.HandleFunc("/bookings/{bookingId}/changes", getBookingChanges.Handle).Methods(http.MethodGet)

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
