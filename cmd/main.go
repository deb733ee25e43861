package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/m04kA/HallBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/HallBookingService/internal/api/handlers/create_booking"
	createCustomerHandler "github.com/m04kA/HallBookingService/internal/api/handlers/create_customer"
	deleteBookingHandler "github.com/m04kA/HallBookingService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/HallBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/HallBookingService/internal/api/handlers/get_booking"
	getBookingPaymentsHandler "github.com/m04kA/HallBookingService/internal/api/handlers/get_booking_payments"
	getCustomerHandler "github.com/m04kA/HallBookingService/internal/api/handlers/get_customer"
	getHallHandler "github.com/m04kA/HallBookingService/internal/api/handlers/get_hall"
	getInvoiceHandler "github.com/m04kA/HallBookingService/internal/api/handlers/get_invoice"
	getStatsHandler "github.com/m04kA/HallBookingService/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/m04kA/HallBookingService/internal/api/handlers/list_bookings"
	recordPaymentHandler "github.com/m04kA/HallBookingService/internal/api/handlers/record_payment"
	searchCustomersHandler "github.com/m04kA/HallBookingService/internal/api/handlers/search_customers"
	sendReminderHandler "github.com/m04kA/HallBookingService/internal/api/handlers/send_reminder"
	updateBookingHandler "github.com/m04kA/HallBookingService/internal/api/handlers/update_booking"
	updateCustomerHandler "github.com/m04kA/HallBookingService/internal/api/handlers/update_customer"
	"github.com/m04kA/HallBookingService/internal/api/middleware"
	"github.com/m04kA/HallBookingService/internal/config"
	"github.com/m04kA/HallBookingService/internal/infra/seed"
	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
	"github.com/m04kA/HallBookingService/internal/integrations/mailer"
	"github.com/m04kA/HallBookingService/internal/integrations/smsqueue"
	bookingsService "github.com/m04kA/HallBookingService/internal/service/bookings"
	"github.com/m04kA/HallBookingService/internal/service/catalog"
	customersService "github.com/m04kA/HallBookingService/internal/service/customers"
	invoiceService "github.com/m04kA/HallBookingService/internal/service/invoice"
	"github.com/m04kA/HallBookingService/internal/service/notifications"
	reportsService "github.com/m04kA/HallBookingService/internal/service/reports"
	createBookingUC "github.com/m04kA/HallBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/HallBookingService/internal/usecase/get_available_slots"
	recordPaymentUC "github.com/m04kA/HallBookingService/internal/usecase/record_payment"
	sendReminderUC "github.com/m04kA/HallBookingService/internal/usecase/send_reminder"
	"github.com/m04kA/HallBookingService/pkg/logger"
	"github.com/m04kA/HallBookingService/pkg/metrics"
	"github.com/m04kA/HallBookingService/pkg/money"
)

// registrySizeInterval период обновления gauge с размерами реестра
const registrySizeInterval = 15 * time.Second

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

	log.Info("Starting HallBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// При выключенных метриках передается nil: доменные счетчики его допускают
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог слотов и реквизиты зала
	hall := cfg.HallDetails()
	slotCatalog, err := catalog.New(cfg.SlotSchedule())
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	log.Info("Slot catalog built: slots=%v", slotCatalog.Labels())

	// Реестр в памяти (он же transaction manager для usecases)
	reg := registry.New(registry.SystemClock{})

	if cfg.Seed.Enabled {
		seedFile, err := seed.Decode(cfg.Seed.File)
		if err != nil {
			log.Fatal("Failed to read seed file: %v", err)
		}
		result, err := seed.NewLoader(reg, slotCatalog, log).Apply(context.Background(), seedFile, time.Now())
		if err != nil {
			log.Fatal("Failed to load seed data: %v", err)
		}
		log.Info("Seed data loaded from %s (customers=%d, bookings=%d, payments=%d)",
			cfg.Seed.File, result.Customers, result.Bookings, result.Payments)
	}

	if cfg.Metrics.Enabled {
		reg.StartSizeReporter(metricsCollector, registrySizeInterval, stopMetricsCh)
		log.Info("Registry size metrics collection started")
	}

	// Форматирование сумм для счетов и уведомлений
	formatter, err := money.NewFormatter(cfg.Invoice.Currency)
	if err != nil {
		log.Fatal("Failed to initialize money formatter: %v", err)
	}

	// Инициализируем интеграционных клиентов
	// Интерфейсные переменные заполняются только для настроенных каналов
	var (
		emailSender notifications.EmailSender
		smsSender   notifications.SMSSender
	)

	if cfg.Notifications.MailerURL != "" {
		emailSender = mailer.NewClient(
			cfg.Notifications.MailerURL,
			time.Duration(cfg.Notifications.MailerTimeout)*time.Second,
			log,
		)
		log.Info("Mailer client initialized (url=%s timeout=%ds)",
			cfg.Notifications.MailerURL, cfg.Notifications.MailerTimeout)
	} else {
		log.Warn("Mailer URL is not configured, email notifications disabled")
	}

	if cfg.Notifications.AMQPURL != "" {
		publisher, err := smsqueue.NewPublisher(
			cfg.Notifications.AMQPURL,
			cfg.Notifications.SMSExchange,
			cfg.Notifications.SMSRoutingKey,
			log,
		)
		if err != nil {
			log.Warn("SMS queue unavailable, SMS notifications disabled: %v", err)
		} else {
			defer publisher.Close()
			smsSender = publisher
			log.Info("SMS publisher initialized (exchange=%s routing_key=%s)",
				cfg.Notifications.SMSExchange, cfg.Notifications.SMSRoutingKey)
		}
	} else {
		log.Warn("AMQP URL is not configured, SMS notifications disabled")
	}

	// Инициализируем сервисы
	invoiceComposer := invoiceService.NewComposer(hall, cfg.Invoice.TaxRate, formatter, invoiceService.NewMemoryNumberStore())
	invoiceSvc := invoiceService.NewService(reg, invoiceComposer, log)

	notificationComposer := notifications.NewComposer(hall, formatter)
	dispatcher := notifications.NewDispatcher(notificationComposer, emailSender, smsSender, metricsCollector, log)

	customerSvc := customersService.NewService(reg, nil, log)
	bookingSvc := bookingsService.NewService(reg, slotCatalog, reg, customerSvc, hall, log)
	reportsSvc := reportsService.NewService(reg, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reg,
		slotCatalog,
		customerSvc,
		invoiceSvc,
		dispatcher,
		metricsCollector,
		reg,
		hall,
		log,
	)
	recordPaymentUseCase := recordPaymentUC.NewUseCase(reg, metricsCollector, reg, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reg, slotCatalog, log)
	sendReminderUseCase := sendReminderUC.NewUseCase(reg, dispatcher, notificationComposer, log)

	// Инициализируем handlers
	getHall := getHallHandler.NewHandler(hall, slotCatalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(recordPaymentUseCase, log)
	getBookingPayments := getBookingPaymentsHandler.NewHandler(bookingSvc, log)
	getInvoice := getInvoiceHandler.NewHandler(invoiceSvc, log)
	sendReminder := sendReminderHandler.NewHandler(sendReminderUseCase, log)
	searchCustomers := searchCustomersHandler.NewHandler(customerSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(customerSvc, log)
	getStats := getStatsHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RecoveryMiddleware(log), middleware.LoggingMiddleware(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Зал и слоты
	api.HandleFunc("/hall", getHall.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Платежи, счет и напоминание
	api.HandleFunc("/bookings/{bookingId}/payments", recordPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/payments", getBookingPayments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/invoice", getInvoice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/reminder", sendReminder.Handle).Methods(http.MethodPost)

	// Клиенты
	api.HandleFunc("/customers", searchCustomers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{email}", getCustomer.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}", updateCustomer.Handle).Methods(http.MethodPatch)

	// Статистика
	api.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// Настраиваем HTTP сервер
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info("Server starting on port %d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
