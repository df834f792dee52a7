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

	getCalendarHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/get_calendar"
	getSessionHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/get_session"
	getSlotOptionsHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/get_slot_options"
	getSuggestionsHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/get_suggestions"
	manageSlotsHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/manage_slots"
	navigateStepHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/navigate_step"
	resolveAddressHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/resolve_address"
	selectCleanerHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/select_cleaner"
	startSessionHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/start_session"
	submitBookingHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/submit_booking"
	updateFormHandler "github.com/m04kA/SMC-WizardService/internal/api/handlers/update_form"
	"github.com/m04kA/SMC-WizardService/internal/api/middleware"
	"github.com/m04kA/SMC-WizardService/internal/config"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	bookingServiceClient "github.com/m04kA/SMC-WizardService/internal/integrations/bookingservice"
	catalogServiceClient "github.com/m04kA/SMC-WizardService/internal/integrations/catalogservice"
	geoServiceClient "github.com/m04kA/SMC-WizardService/internal/integrations/geoservice"
	matchingServiceClient "github.com/m04kA/SMC-WizardService/internal/integrations/matchingservice"
	pricingServiceClient "github.com/m04kA/SMC-WizardService/internal/integrations/pricingservice"
	userServiceClient "github.com/m04kA/SMC-WizardService/internal/integrations/userservice"
	estimatorService "github.com/m04kA/SMC-WizardService/internal/service/estimator"
	sessionsService "github.com/m04kA/SMC-WizardService/internal/service/sessions"
	getCalendarUC "github.com/m04kA/SMC-WizardService/internal/usecase/get_calendar"
	getSlotOptionsUC "github.com/m04kA/SMC-WizardService/internal/usecase/get_slot_options"
	getSuggestionsUC "github.com/m04kA/SMC-WizardService/internal/usecase/get_suggestions"
	manageSlotsUC "github.com/m04kA/SMC-WizardService/internal/usecase/manage_slots"
	navigateStepUC "github.com/m04kA/SMC-WizardService/internal/usecase/navigate_step"
	resolveAddressUC "github.com/m04kA/SMC-WizardService/internal/usecase/resolve_address"
	startSessionUC "github.com/m04kA/SMC-WizardService/internal/usecase/start_session"
	submitBookingUC "github.com/m04kA/SMC-WizardService/internal/usecase/submit_booking"
	updateFormUC "github.com/m04kA/SMC-WizardService/internal/usecase/update_form"
	"github.com/m04kA/SMC-WizardService/pkg/clock"
	"github.com/m04kA/SMC-WizardService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WizardService/pkg/idgen"
	"github.com/m04kA/SMC-WizardService/pkg/logger"
	"github.com/m04kA/SMC-WizardService/pkg/metrics"
	"github.com/m04kA/SMC-WizardService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-WizardService/pkg/txmanager"
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

	log.Info("Starting SMC-WizardService...")
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
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	pricingClient := pricingServiceClient.NewClient(
		cfg.PricingService.URL,
		time.Duration(cfg.PricingService.Timeout)*time.Second,
		log,
	)
	matchingClient := matchingServiceClient.NewClient(
		cfg.MatchingService.URL,
		time.Duration(cfg.MatchingService.Timeout)*time.Second,
		log,
	)
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	geoClient := geoServiceClient.NewClient(
		cfg.GeoService.URL,
		time.Duration(cfg.GeoService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Catalog=%s, Pricing=%s, Matching=%s, Booking=%s, User=%s, Geo=%s)",
		cfg.CatalogService.URL, cfg.PricingService.URL, cfg.MatchingService.URL,
		cfg.BookingService.URL, cfg.UserService.URL, cfg.GeoService.URL)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		sessionRepository *sessionRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	idGenerator := idgen.New()
	systemClock := clock.New()

	// Координатор отложенного пересчета стоимости
	estimator := estimatorService.NewService(
		pricingClient,
		sessionRepository,
		time.Duration(cfg.Wizard.EstimateDebounceMS)*time.Millisecond,
		log,
	)
	defer estimator.Close()
	log.Info("Estimate coordinator started (debounce=%dms)", cfg.Wizard.EstimateDebounceMS)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(sessionRepository, log)

	// Инициализируем use cases
	startSessionUseCase := startSessionUC.NewUseCase(sessionRepository, catalogClient, idGenerator, log)
	updateFormUseCase := updateFormUC.NewUseCase(sessionRepository, estimator, log)
	navigateStepUseCase := navigateStepUC.NewUseCase(sessionRepository, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(sessionRepository, systemClock, log)
	getSlotOptionsUseCase := getSlotOptionsUC.NewUseCase(sessionRepository, log)
	manageSlotsUseCase := manageSlotsUC.NewUseCase(sessionRepository, txMgr, systemClock, log)
	resolveAddressUseCase := resolveAddressUC.NewUseCase(sessionRepository, geoClient, userClient, log)
	getSuggestionsUseCase := getSuggestionsUC.NewUseCase(sessionRepository, matchingClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(sessionRepository, bookingClient, txMgr, log)

	// Инициализируем handlers
	startSession := startSessionHandler.NewHandler(startSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	updateForm := updateFormHandler.NewHandler(updateFormUseCase, log)
	navigateStep := navigateStepHandler.NewHandler(navigateStepUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getSlotOptions := getSlotOptionsHandler.NewHandler(getSlotOptionsUseCase, log)
	manageSlots := manageSlotsHandler.NewHandler(manageSlotsUseCase, log)
	resolveAddress := resolveAddressHandler.NewHandler(resolveAddressUseCase, log)
	getSuggestions := getSuggestionsHandler.NewHandler(getSuggestionsUseCase, log)
	selectCleaner := selectCleanerHandler.NewHandler(sessionSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	// Идентификатор сессии работает как capability: все маршруты мастера
	// доступны анонимно, X-User-ID проставляется шлюзом при наличии входа
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Жизненный цикл сессии ---
	api.HandleFunc("/wizard/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{sessionId}", getSession.HandleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/wizard/sessions/{sessionId}/bind", getSession.HandleBind).Methods(http.MethodPost)

	// --- Форма и навигация ---
	api.HandleFunc("/wizard/sessions/{sessionId}/form", updateForm.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/wizard/sessions/{sessionId}/steps/next", navigateStep.HandleNext).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/steps/back", navigateStep.HandleBack).Methods(http.MethodPost)

	// --- Выбор времени ---
	api.HandleFunc("/wizard/sessions/{sessionId}/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{sessionId}/slot-options", getSlotOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{sessionId}/slots", manageSlots.HandleAdd).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/slots/{index}", manageSlots.HandleRemove).Methods(http.MethodDelete)

	// --- Адрес ---
	api.HandleFunc("/wizard/sessions/{sessionId}/address/suggest", resolveAddress.HandleSuggest).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{sessionId}/address/resolve", resolveAddress.HandleResolve).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/address/saved", resolveAddress.HandleSelectSaved).Methods(http.MethodPost)

	// --- Выбор исполнителя и отправка ---
	api.HandleFunc("/wizard/sessions/{sessionId}/suggestions", getSuggestions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{sessionId}/cleaner", selectCleaner.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

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
