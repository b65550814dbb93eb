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

	getDayScheduleHandler "github.com/m04kA/SMC-ScheduleBoard/internal/api/handlers/get_day_schedule"
	previewAppointmentHandler "github.com/m04kA/SMC-ScheduleBoard/internal/api/handlers/preview_appointment"
	saveAppointmentHandler "github.com/m04kA/SMC-ScheduleBoard/internal/api/handlers/save_appointment"
	"github.com/m04kA/SMC-ScheduleBoard/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleBoard/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ScheduleBoard/internal/infra/storage/appointment"
	rosterRepo "github.com/m04kA/SMC-ScheduleBoard/internal/infra/storage/roster"
	"github.com/m04kA/SMC-ScheduleBoard/internal/scheduling"
	getDayScheduleUC "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/get_day_schedule"
	previewAppointmentUC "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/preview_appointment"
	saveAppointmentUC "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/save_appointment"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/logger"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/metrics"
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

	log.Info("Starting SMC-ScheduleBoard...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены); nil-коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Рабочее окно сетки; Validate уже проверил его при загрузке конфига
	startMinute, _ := cfg.Schedule.StartMinute()
	endMinute, _ := cfg.Schedule.EndMinute()
	grid := scheduling.GridConfig{
		StartMinute: startMinute,
		EndMinute:   endMinute,
		SlotMinutes: cfg.Schedule.SlotMinutes,
	}
	log.Info("Schedule grid %s-%s, slot %d min", cfg.Schedule.DayStart, cfg.Schedule.DayEnd, grid.SlotMinutes)

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

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	rosterRepository := rosterRepo.NewRepository(db)

	// Инициализируем use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		appointmentRepository,
		rosterRepository,
		grid,
		metricsCollector,
		log,
	)
	previewAppointmentUseCase := previewAppointmentUC.NewUseCase(
		rosterRepository,
		log,
	)
	saveAppointmentUseCase := saveAppointmentUC.NewUseCase(
		appointmentRepository,
		rosterRepository,
		cfg.Schedule.DefaultTitle,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	previewAppointment := previewAppointmentHandler.NewHandler(previewAppointmentUseCase, log)
	saveAppointment := saveAppointmentHandler.NewHandler(saveAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Сетка дня
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Предварительный расчет длительности и цены
	api.HandleFunc("/appointments/preview", previewAppointment.Handle).Methods(http.MethodPost)

	// Создание и редактирование записи
	api.HandleFunc("/appointments", saveAppointment.Create).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", saveAppointment.Update).Methods(http.MethodPut)

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
