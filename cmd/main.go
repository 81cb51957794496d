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

	cancelBookingHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/cancel_booking"
	createBlockHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/create_block"
	createBookingHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/delete_block"
	getAvailableSlotsHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/get_available_slots"
	getBarberBlocksHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/get_barber_blocks"
	getBarberBookingsHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/get_barber_bookings"
	getBookingHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/get_booking"
	getBookingDatesHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/get_booking_dates"
	getCustomerBookingsHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/get_customer_bookings"
	getDayScheduleHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/get_day_schedule"
	getScheduleConfigHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/get_schedule_config"
	updateBookingStatusHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/update_booking_status"
	updateScheduleConfigHandler "github.com/agendabarber/AB-BookingService/internal/api/handlers/update_schedule_config"
	"github.com/agendabarber/AB-BookingService/internal/api/middleware"
	"github.com/agendabarber/AB-BookingService/internal/config"
	blockRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/block"
	bookingRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/booking"
	configRepo "github.com/agendabarber/AB-BookingService/internal/infra/storage/schedule"
	catalogServiceClient "github.com/agendabarber/AB-BookingService/internal/integrations/catalogservice"
	blocksService "github.com/agendabarber/AB-BookingService/internal/service/blocks"
	bookingsService "github.com/agendabarber/AB-BookingService/internal/service/bookings"
	configService "github.com/agendabarber/AB-BookingService/internal/service/config"
	createBookingUC "github.com/agendabarber/AB-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/agendabarber/AB-BookingService/internal/usecase/get_available_slots"
	getBookingDatesUC "github.com/agendabarber/AB-BookingService/internal/usecase/get_booking_dates"
	getDayScheduleUC "github.com/agendabarber/AB-BookingService/internal/usecase/get_day_schedule"
	"github.com/agendabarber/AB-BookingService/pkg/dbmetrics"
	"github.com/agendabarber/AB-BookingService/pkg/logger"
	"github.com/agendabarber/AB-BookingService/pkg/metrics"
	"github.com/agendabarber/AB-BookingService/pkg/simpletxmanager"
	"github.com/agendabarber/AB-BookingService/pkg/txmanager"
)

func main() {
	// Carrega a configuração
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializa o logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Inicializa as métricas (se habilitadas)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conecta ao banco de dados
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configura o connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verifica a conexão
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Inicializa o cliente do catálogo (barbeiros, serviços e barbearia)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Inicializa os repositórios (com métricas ou sem)
	var (
		bookingRepository *bookingRepo.Repository
		blockRepository   *blockRepo.Repository
		configRepository  *configRepo.Repository
	)

	// Interface do transaction manager usada pelos usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Inicializa os serviços
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogClient,
		log,
	)
	configSvc := configService.NewService(
		configRepository,
		catalogClient,
		log,
	)
	blockSvc := blocksService.NewService(
		blockRepository,
		catalogClient,
		log,
	)

	// Inicializa os use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		configRepository,
		catalogClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockRepository,
		configRepository,
		catalogClient,
		log,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		bookingRepository,
		blockRepository,
		configRepository,
		catalogClient,
		log,
	)

	getBookingDatesUseCase := getBookingDatesUC.NewUseCase(
		configRepository,
		catalogClient,
		log,
	)

	// Inicializa os handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getBookingDates := getBookingDatesHandler.NewHandler(getBookingDatesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getBarberBookings := getBarberBookingsHandler.NewHandler(bookingSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(configSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(configSvc, log)
	createBlock := createBlockHandler.NewHandler(blockSvc, log)
	getBarberBlocks := getBarberBlocksHandler.NewHandler(blockSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blockSvc, log)

	// Configura o roteador
	r := mux.NewRouter()

	// Middleware de métricas HTTP (se habilitadas)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Endpoint de métricas (público, sem autenticação)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Prefixo da API
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ROTAS PÚBLICAS (sem autenticação)
	// ============================================================

	// Horários livres de um barbeiro para um serviço numa data
	api.HandleFunc("/barbers/{barberId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Grade completa do dia (livres e ocupados)
	api.HandleFunc("/barbers/{barberId}/day-schedule",
		getDaySchedule.Handle).Methods(http.MethodGet)

	// Datas abertas para agendamento dentro da janela
	api.HandleFunc("/barbers/{barberId}/booking-dates",
		getBookingDates.Handle).Methods(http.MethodGet)

	// Configuração efetiva de horários do barbeiro
	api.HandleFunc("/barbers/{barberId}/schedule-config",
		getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// ROTAS PROTEGIDAS (exigem o header X-User-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Agendamentos ---
	// Criação de agendamento
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Busca de agendamento por ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Cancelamento de agendamento
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Atualização de status (completed, no_show) pelo staff
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Histórico de agendamentos do cliente
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Agenda do barbeiro (barbeiro e staff) ---
	// Agenda de um barbeiro com filtros de período e status
	protected.HandleFunc("/barbers/{barberId}/bookings", getBarberBookings.Handle).Methods(http.MethodGet)

	// Bloqueios administrativos de agenda
	protected.HandleFunc("/barbers/{barberId}/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbers/{barberId}/blocks", getBarberBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// --- Configuração de horários (staff) ---
	protected.HandleFunc("/schedule-config", updateScheduleConfig.Handle).Methods(http.MethodPut)

	// Cria o servidor HTTP
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

	// Aguarda o sinal de término
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Encerra a coleta de métricas do connection pool
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
