package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/odontosys/clinic-api/internal/config"
	appointmentHandler "github.com/odontosys/clinic-api/internal/handler/appointment"
	catalogHandler "github.com/odontosys/clinic-api/internal/handler/catalog"
	configdataHandler "github.com/odontosys/clinic-api/internal/handler/configdata"
	doctorHandler "github.com/odontosys/clinic-api/internal/handler/doctor"
	healthHandler "github.com/odontosys/clinic-api/internal/handler/health"
	patientHandler "github.com/odontosys/clinic-api/internal/handler/patient"
	reportHandler "github.com/odontosys/clinic-api/internal/handler/report"
	setupHandler "github.com/odontosys/clinic-api/internal/handler/setup"
	"github.com/odontosys/clinic-api/internal/lock"
	"github.com/odontosys/clinic-api/internal/middleware"
	"github.com/odontosys/clinic-api/internal/notification"
	"github.com/odontosys/clinic-api/internal/repository/postgres"
	"github.com/odontosys/clinic-api/internal/router"
	catalogService "github.com/odontosys/clinic-api/internal/service/catalog"
	doctorService "github.com/odontosys/clinic-api/internal/service/doctor"
	patientService "github.com/odontosys/clinic-api/internal/service/patient"
	reportService "github.com/odontosys/clinic-api/internal/service/report"
	"github.com/odontosys/clinic-api/internal/service/scheduling"
	setupService "github.com/odontosys/clinic-api/internal/service/setup"
	"github.com/odontosys/clinic-api/pkg/logger"
	"github.com/odontosys/clinic-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.New(&logger.Config{
		Level:  level,
		Pretty: cfg.Log.Pretty,
	})
	log.Logger = appLogger

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}
	cancel()

	doctorRepo := postgres.NewDoctorRepository(db)
	servicioRepo := postgres.NewServicioRepository(db)
	pacienteRepo := postgres.NewPacienteRepository(db)
	citaRepo := postgres.NewCitaRepository(db)

	locker := lock.NewNoop()
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid redis url")
		}
		locker = lock.NewRedis(
			redis.NewClient(opts),
			time.Duration(cfg.Redis.LockTTLSeconds)*time.Second,
		)
		log.Info().Msg("redis slot lock enabled")
	}

	notifier := notification.NewNoop()
	if cfg.SMTP.Host != "" {
		notifier = notification.NewMailNotifier(notification.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		log.Info().Msg("email notifications enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	domainMetrics := metrics.New("clinic", registry)
	httpMetrics := metrics.NewHTTP("clinic", registry)

	enricher := scheduling.NewEnricher(doctorRepo, servicioRepo)
	schedulingSvc := scheduling.NewService(
		citaRepo,
		doctorRepo,
		pacienteRepo,
		enricher,
		locker,
		notifier,
		scheduling.PolicyByName(cfg.Scheduling.TransitionPolicy),
		domainMetrics,
		appLogger,
	)
	doctorSvc := doctorService.NewService(doctorRepo)
	catalogSvc := catalogService.NewService(servicioRepo)
	patientSvc := patientService.NewService(pacienteRepo)
	reportSvc := reportService.NewService(citaRepo, servicioRepo, enricher)
	setupSvc := setupService.NewService(doctorRepo, servicioRepo, pacienteRepo, appLogger)

	r := router.New(router.Config{
		Timeout:   time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		RateLimit: rate.Limit(cfg.RateLimit.RPS),
		RateBurst: cfg.RateLimit.Burst,
		CORS:      middleware.DefaultCORSConfig(),
	}, registry, httpMetrics)

	r.Register(
		appointmentHandler.NewHandler(schedulingSvc),
		doctorHandler.NewHandler(doctorSvc),
		catalogHandler.NewHandler(catalogSvc),
		patientHandler.NewHandler(patientSvc),
		reportHandler.NewHandler(reportSvc),
		setupHandler.NewHandler(setupSvc),
		healthHandler.NewHandler(db),
	)
	r.RegisterConfig(configdataHandler.NewHandler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
