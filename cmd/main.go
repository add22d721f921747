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

	cancelAppointmentHandler "github.com/barbeariapremium/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/barbeariapremium/booking-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/barbeariapremium/booking-service/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/barbeariapremium/booking-service/internal/api/handlers/get_availability"
	listAppointmentsHandler "github.com/barbeariapremium/booking-service/internal/api/handlers/list_appointments"
	"github.com/barbeariapremium/booking-service/internal/api/middleware"
	"github.com/barbeariapremium/booking-service/internal/config"
	appointmentStore "github.com/barbeariapremium/booking-service/internal/infra/storage/appointment"
	"github.com/barbeariapremium/booking-service/internal/notify"
	"github.com/barbeariapremium/booking-service/internal/schedule"
	appointmentsService "github.com/barbeariapremium/booking-service/internal/service/appointments"
	bookAppointmentUC "github.com/barbeariapremium/booking-service/internal/usecase/book_appointment"
	getAvailabilityUC "github.com/barbeariapremium/booking-service/internal/usecase/get_availability"
	"github.com/barbeariapremium/booking-service/pkg/logger"
	"github.com/barbeariapremium/booking-service/pkg/metrics"
	"github.com/barbeariapremium/booking-service/pkg/txlock"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting barbearia booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// The catalog and schedule policy are static for the process lifetime.
	catalog := cfg.BuildCatalog()
	policy := schedule.NewPolicy(cfg.Schedule)
	log.Info("Catalog loaded: %d staff, %d services", catalog.StaffCount(), catalog.ServiceCount())

	// The store owns all mutable state; it is created here and handed to the
	// use cases explicitly. No package-level singletons.
	store, err := appointmentStore.NewStore(cfg.Storage.File)
	if err != nil {
		log.Fatal("Failed to open appointment store: %v", err)
	}
	log.Info("Appointment store loaded from %s (%d appointments)", cfg.Storage.File, store.Len())

	if cfg.Metrics.Enabled {
		metricsCollector.TrackActiveAppointments(store.ActiveLen)
	}

	txManager := txlock.NewManager()

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		store,
		policy,
		catalog,
		txManager,
		&bookAppointmentUC.UUIDGenerator{},
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		store,
		policy,
		catalog,
		log,
	)

	appointmentSvc := appointmentsService.NewService(store, catalog, log)

	whatsappBuilder := notify.NewWhatsAppBuilder(notify.ShopInfo{
		Name:     cfg.Shop.Name,
		Address:  cfg.Shop.Address,
		Phone:    cfg.Shop.Phone,
		WhatsApp: cfg.Shop.WhatsApp,
	})

	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, whatsappBuilder, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Slot availability for a staff member on a date
	api.HandleFunc("/staff/{staffId}/available-slots", getAvailability.Handle).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

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
