package main

import (
	"context"
	"log"

	"github.com/mondragon-developer/statools/adapters/excel"
	"github.com/mondragon-developer/statools/adapters/memory"
	"github.com/mondragon-developer/statools/adapters/postgres"
	"github.com/mondragon-developer/statools/app"
	"github.com/mondragon-developer/statools/internal/config"
	"github.com/mondragon-developer/statools/internal/errors"
	"github.com/mondragon-developer/statools/internal/migration"
	"github.com/mondragon-developer/statools/ports"
	"github.com/mondragon-developer/statools/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase connects to PostgreSQL and applies the schema.
func initDatabase(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// History store: Postgres when configured, capped in-memory otherwise
	// so the calculators stay stateless by default.
	var store ports.CalculationStore
	if appConfig.Database.URL != "" {
		db, err := initDatabase(appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		store = postgres.NewCalculationStore(db)
		log.Println("[History] Using PostgreSQL calculation store")
	} else {
		store = memory.NewCalculationStore(appConfig.History.Limit)
		log.Printf("[History] Using in-memory calculation store (limit %d)", appConfig.History.Limit)
	}

	// Optional workbook overview: profile every numeric column of the
	// configured data file before serving.
	var profiles []app.ColumnProfile
	if appConfig.Data.File != "" {
		reader := excel.NewDataReader(appConfig.Data.File)
		workbook, err := reader.Read()
		if err != nil {
			log.Fatalf("Failed to read data file: %v", err)
		}

		profiler := app.NewProfileService(4)
		profiles, err = profiler.ProfileWorkbook(context.Background(), workbook)
		if err != nil {
			log.Fatalf("Failed to profile data file: %v", err)
		}
	}

	uiApp, err := ui.NewApp(ui.Config{
		Store:        store,
		HistoryLimit: appConfig.History.Limit,
		Profiles:     profiles,
	})
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	log.Fatal(uiApp.Start(":" + appConfig.Server.Port))
}
