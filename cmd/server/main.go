package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	api "garagebook-backend/internal/api/http"
	"garagebook-backend/internal/clock"
	"garagebook-backend/internal/config"
	"garagebook-backend/internal/gating"
	"garagebook-backend/internal/jobs"
	"garagebook-backend/internal/logger"
	"garagebook-backend/internal/notify"
	"garagebook-backend/internal/repository"
	"garagebook-backend/internal/repository/file"
	"garagebook-backend/internal/repository/postgres"
	"garagebook-backend/internal/scheduler"
	"garagebook-backend/internal/security"
	"garagebook-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Garagebook backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "driver", cfg.Store.Driver)

	// Initialize repositories
	var (
		contractRepo repository.ContractRepository
		vehicleRepo  repository.VehicleRepository
	)
	switch cfg.Store.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")
		store := postgres.NewStore(db)
		contractRepo = store.ContractRepository
		vehicleRepo = store.VehicleRepository
	default:
		store, err := file.Open(cfg.Store.DataDir)
		if err != nil {
			log.Fatalf("Failed to open file store: %v", err)
		}
		logger.Info("File store opened", "data_dir", cfg.Store.DataDir)
		contractRepo = store.ContractRepository()
		vehicleRepo = store.VehicleRepository()
	}

	// Initialize services
	queue := notify.NewQueue()
	clk := clock.System{}
	limits := gating.LimitsFor(gating.Plan(cfg.Gating.Plan))

	contractSvc := service.NewContractService(contractRepo, vehicleRepo, queue, clk, limits)
	vehicleSvc := service.NewVehicleService(vehicleRepo, contractSvc, clk, limits)

	// Start the cron scheduler
	jobRunner := jobs.NewJobRunner(contractSvc, vehicleRepo, queue, clk, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Initialize API token auth if configured
	var tokens security.TokenManager
	if cfg.Auth.Secret != "" {
		tokens = security.NewTokenManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenExpiryMinutes)*time.Minute)
	} else {
		logger.Warn("API auth disabled: no auth secret configured")
	}

	// Set up HTTP server
	router := api.NewRouter(
		api.NewContractHandler(contractSvc),
		api.NewVehicleHandler(vehicleSvc, contractSvc),
		api.NewReminderHandler(queue),
		tokens,
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
