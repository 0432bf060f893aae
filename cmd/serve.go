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
	"github.com/urfave/cli/v2"

	assignWeeklyMenuHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/assign_weekly_menu"
	cancelReservationHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/cancel_reservation"
	clearWeeklyMenuHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/clear_weekly_menu"
	createReservationHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/create_reservation"
	finalizeReservationHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/finalize_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/get_user_reservations"
	getVenueReservationsHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/get_venue_reservations"
	getWeeklyMenuHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/get_weekly_menu"
	listConsumablesHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/list_consumables"
	listVenuesHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/list_venues"
	updateReservationHandler "github.com/m04kA/SMC-CanteenService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-CanteenService/internal/api/middleware"
	"github.com/m04kA/SMC-CanteenService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CanteenService/internal/infra/storage/catalog"
	catalogService "github.com/m04kA/SMC-CanteenService/internal/service/catalog"
	menuService "github.com/m04kA/SMC-CanteenService/internal/service/menu"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-CanteenService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-CanteenService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CanteenService/pkg/metrics"
)

func serve(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-CanteenService...")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         reservations.MetricsRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог площадок и меню
	catalog, err := catalogRepo.Load(cfg.Catalog.File)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("Catalog loaded from %s", cfg.Catalog.File)

	// Хранилище бронирований
	stores, closeStorage, err := openStorage(c.Context, cfg, log, metricsCollector, stopMetricsCh)
	if err != nil {
		return err
	}
	defer closeStorage()

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalog, cfg.Booking.ReservationFee, log)
	reservationSvc := reservations.NewService(stores.reservations, catalogSvc, recorder, log)
	menuSvc := menuService.NewService(stores.menus, catalogSvc, log)

	// Журнал занятости строится из сохранённых бронирований до приёма запросов
	if err := reservationSvc.Init(c.Context); err != nil {
		return fmt.Errorf("failed to initialize reservations: %w", err)
	}

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		catalogSvc,
		catalogSvc,
		reservationSvc,
		cfg.Booking.AdvanceDays,
		cfg.Booking.SameDay,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogSvc,
		reservationSvc,
		cfg.Booking.AdvanceDays,
		cfg.Booking.SameDay,
		log,
	)

	// Инициализируем handlers
	listVenues := listVenuesHandler.NewHandler(catalogSvc, log)
	listConsumables := listConsumablesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, catalogSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	finalizeReservation := finalizeReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getVenueReservations := getVenueReservationsHandler.NewHandler(reservationSvc, catalogSvc, log)
	getWeeklyMenu := getWeeklyMenuHandler.NewHandler(menuSvc, log)
	assignWeeklyMenu := assignWeeklyMenuHandler.NewHandler(menuSvc, log)
	clearWeeklyMenu := clearWeeklyMenuHandler.NewHandler(menuSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/consumables", listConsumables.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/weekly-menu", getWeeklyMenu.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID, роль из X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Персонал столовой ---
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRoles(domain.RoleChef, domain.RoleCashier))
	staff.HandleFunc("/venues/{venueId}/reservations", getVenueReservations.Handle).Methods(http.MethodGet)

	// --- Недельное меню ---
	chef := protected.PathPrefix("").Subrouter()
	chef.Use(middleware.RequireRoles(domain.RoleChef))
	chef.HandleFunc("/venues/{venueId}/weekly-menu/{weekday}/{meal}", assignWeeklyMenu.Handle).Methods(http.MethodPut)
	chef.HandleFunc("/venues/{venueId}/weekly-menu/{weekday}/{meal}", clearWeeklyMenu.Handle).Methods(http.MethodDelete)

	cashier := protected.PathPrefix("").Subrouter()
	cashier.Use(middleware.RequireRoles(domain.RoleCashier))
	cashier.HandleFunc("/reservations/{reservationId}/finalize", finalizeReservation.Handle).Methods(http.MethodPatch)

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
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
