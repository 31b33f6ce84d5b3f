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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/approve_booking"
	getBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_booking"
	getDayLayoutHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_layout"
	getMonthGridHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_month_grid"
	getUtilizationReportHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_utilization_report"
	getWeekLayoutHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_week_layout"
	rejectBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/reject_booking"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	bookingStoreClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/bookingstore"
	settingsServiceClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/settingsservice"
	bookingsService "github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
	approveBookingUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/approve_booking"
	getMonthGridUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_month_grid"
	getTimelineLayoutUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_timeline_layout"
	getUtilizationReportUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_utilization_report"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Дефолтная сетка расписания на случай недоступности сервиса настроек
	fallbackSchedule := cfg.Schedule.FallbackScheduleConfig()
	log.Info("Fallback schedule config: slot=%dm, working hours %02d:00-%02d:00",
		fallbackSchedule.SlotDurationMinutes,
		fallbackSchedule.WorkingHours.StartHour,
		fallbackSchedule.WorkingHours.EndHour)

	// Инициализируем интеграционных клиентов
	storeClient := bookingStoreClient.NewClient(
		cfg.BookingStore.URL,
		time.Duration(cfg.BookingStore.Timeout)*time.Second,
		log,
	)
	settingsClient := settingsServiceClient.NewClient(
		cfg.SettingsService.URL,
		time.Duration(cfg.SettingsService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BookingStore=%s timeout=%ds, SettingsService=%s timeout=%ds)",
		cfg.BookingStore.URL, cfg.BookingStore.Timeout, cfg.SettingsService.URL, cfg.SettingsService.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		storeClient,
		settingsClient,
		fallbackSchedule,
		log,
	)

	// Инициализируем use cases
	timelineLayoutUseCase := getTimelineLayoutUC.NewUseCase(
		storeClient,
		settingsClient,
		fallbackSchedule,
		log,
	)
	monthGridUseCase := getMonthGridUC.NewUseCase(
		storeClient,
		log,
	)
	utilizationReportUseCase := getUtilizationReportUC.NewUseCase(
		storeClient,
		settingsClient,
		fallbackSchedule,
		log,
	)
	approveBookingUseCase := approveBookingUC.NewUseCase(
		storeClient,
		settingsClient,
		fallbackSchedule,
		log,
	)

	// Инициализируем handlers
	getDayLayout := getDayLayoutHandler.NewHandler(timelineLayoutUseCase, log)
	getWeekLayout := getWeekLayoutHandler.NewHandler(timelineLayoutUseCase, log)
	getMonthGrid := getMonthGridHandler.NewHandler(monthGridUseCase, log)
	getUtilizationReport := getUtilizationReportHandler.NewHandler(utilizationReportUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(approveBookingUseCase, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Раскладка таймлайна на день
	api.HandleFunc("/schedule/layout/day", getDayLayout.Handle).Methods(http.MethodGet)

	// Раскладка таймлайна на неделю
	api.HandleFunc("/schedule/layout/week", getWeekLayout.Handle).Methods(http.MethodGet)

	// Месячная сетка навигации
	api.HandleFunc("/schedule/month", getMonthGrid.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Отчёт утилизации сетки за период
	protected.HandleFunc("/schedule/utilization", getUtilizationReport.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение ожидающей записи
	protected.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)

	// Отклонение записи
	protected.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)

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
