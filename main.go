package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"startupsim/adapters/excel"
	"startupsim/adapters/memory"
	"startupsim/adapters/postgres"
	"startupsim/adapters/render"
	"startupsim/adapters/rng"
	"startupsim/app"
	"startupsim/internal/config"
	"startupsim/internal/errors"
	"startupsim/internal/logger"
	"startupsim/internal/migration"
	"startupsim/ports"
	"startupsim/ui"
)

// initDatabase connects to PostgreSQL and applies the schema
func initDatabase(ctx context.Context, appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}
	db.SetMaxOpenConns(appConfig.Database.MaxOpenConns)
	db.SetMaxIdleConns(appConfig.Database.MaxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.DatabaseError("failed to ping database", err)
	}

	if err := migration.NewRunner().Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}
	return db, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// run returns instead of exiting so its deferred closes execute
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	appLogger, err := logger.Setup(appConfig.Logging.Level, appConfig.Logging.Format)
	if err != nil {
		return errors.Wrap(err, "failed to configure logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repo ports.ReportRepository
	if appConfig.Database.Persistent() {
		db, err := initDatabase(ctx, appConfig)
		if err != nil {
			return errors.Wrap(err, "failed to initialize database")
		}
		defer db.Close()
		repo = postgres.NewReportRepository(db)
		appLogger.Info("using postgres report store")
	} else {
		repo = memory.NewReportRepository()
		appLogger.Warn("DATABASE_URL not set, reports are kept in memory")
	}

	settings := app.SimulationSettings{
		PersonaCount:     appConfig.Simulation.PersonaCount,
		ProjectionMonths: appConfig.Simulation.ProjectionMonths,
		Threshold:        appConfig.Simulation.Threshold,
		Seed:             appConfig.Simulation.Seed,
		BatchConcurrency: appConfig.Simulation.BatchConcurrency,
		MaxBatchRuns:     appConfig.Simulation.MaxBatchRuns,
	}
	service := app.NewSimulationService(repo, rng.NewAdapter(), excel.NewReportExporter(), render.NewHTMLRenderer(), settings, appLogger)

	server := ui.NewServer(service, ui.Options{
		GinMode:          appConfig.Server.GinMode,
		CORSAllowOrigins: appConfig.Server.CORSAllowOrigins,
		DefaultMonths:    appConfig.Simulation.ProjectionMonths,
		Logger:           appLogger,
	})

	if err := server.Start(ctx, ":"+appConfig.Server.Port); err != nil {
		return errors.Wrap(err, "server failed")
	}
	return nil
}
