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

	appointmentStatsHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/appointment_stats"
	cancelAppointmentHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/cancel_appointment"
	createBookingHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/create_booking"
	createQuotationHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/create_quotation"
	getAppointmentHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/get_available_slots"
	getContactHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/get_contact"
	getServiceHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/get_service"
	listAppointmentsHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/list_appointments"
	listCategoriesHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/list_categories"
	listServicesHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/list_services"
	rescheduleAppointmentHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/reschedule_appointment"
	searchContactsHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/search_contacts"
	transitionAppointmentHandler "github.com/om-engineers/OME-BookingService/internal/api/handlers/transition_appointment"
	"github.com/om-engineers/OME-BookingService/internal/api/middleware"
	"github.com/om-engineers/OME-BookingService/internal/config"
	appointmentRepo "github.com/om-engineers/OME-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/om-engineers/OME-BookingService/internal/infra/storage/catalog"
	contactRepo "github.com/om-engineers/OME-BookingService/internal/infra/storage/contact"
	appointmentsService "github.com/om-engineers/OME-BookingService/internal/service/appointments"
	catalogService "github.com/om-engineers/OME-BookingService/internal/service/catalog"
	contactsService "github.com/om-engineers/OME-BookingService/internal/service/contacts"
	getAvailableSlotsUC "github.com/om-engineers/OME-BookingService/internal/usecase/get_available_slots"
	submitRequestUC "github.com/om-engineers/OME-BookingService/internal/usecase/submit_request"
	"github.com/om-engineers/OME-BookingService/pkg/logger"
	"github.com/om-engineers/OME-BookingService/pkg/metrics"
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

	log.Info("Starting OME-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем in-memory хранилища
	appointmentRepository := appointmentRepo.NewRepository()
	contactRepository := contactRepo.NewRepository()
	catalogRepository := catalogRepo.NewRepository()

	// Наполняем каталог стартовым набором услуг
	if err := catalogRepository.Seed(context.Background(), catalogRepo.DefaultOfferings()); err != nil {
		log.Fatal("Failed to seed service catalog: %v", err)
	}
	log.Info("Service catalog seeded with %d offerings", catalogRepository.Len())

	// Gauge размеров хранилищ: значение читается в момент scrape
	if cfg.Metrics.Enabled {
		metricsCollector.RegisterStoreSize("appointments", appointmentRepository.Len)
		metricsCollector.RegisterStoreSize("contacts", contactRepository.Len)
		metricsCollector.RegisterStoreSize("catalog", catalogRepository.Len)
		log.Info("Store size gauges registered")
	}

	// Рабочее расписание выездов
	schedule := cfg.Schedule.ToWorkSchedule()
	log.Info("Work schedule: %s-%s, slot=%dm, advance window=%d days",
		schedule.Open, schedule.Close, schedule.SlotDurationMinutes, schedule.AdvanceBookingDays)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		contactRepository,
		catalogRepository,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	contactsSvc := contactsService.NewService(contactRepository, log)

	// Инициализируем use cases
	submitRequestUseCase := submitRequestUC.NewUseCase(
		appointmentRepository,
		contactRepository,
		catalogRepository,
		schedule,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		schedule,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(submitRequestUseCase, log)
	createQuotation := createQuotationHandler.NewHandler(submitRequestUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	appointmentStats := appointmentStatsHandler.NewHandler(appointmentsSvc, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(appointmentsSvc, log)
	getContact := getContactHandler.NewHandler(contactsSvc, log)
	searchContacts := searchContactsHandler.NewHandler(contactsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// ============================================================
	// PUBLIC ROUTES (клиентская форма, без аутентификации)
	// ============================================================

	// Приём заявок
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/quotations", createQuotation.Handle).Methods(http.MethodPost)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (дашборд персонала, требуют X-Staff-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/stats", appointmentStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", transitionAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// --- Справочник контактов ---
	protected.HandleFunc("/contacts", searchContacts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/contacts/{contactId}", getContact.Handle).Methods(http.MethodGet)

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
