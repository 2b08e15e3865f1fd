package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"startupsim/adapters/postgres"
	"startupsim/domain/core"
	"startupsim/internal/migration"
	"startupsim/models"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate <database_url> [report_dir]")
	}

	databaseURL := os.Args[1]
	ctx := context.Background()

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	runner := migration.NewRunner()
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Schema at version %s", runner.Version())

	if len(os.Args) < 3 {
		return
	}

	reportDir := os.Args[2]
	files, err := findReportFiles(reportDir)
	if err != nil {
		log.Fatalf("Failed to find report files: %v", err)
	}
	log.Printf("Found %d report files to import from %s", len(files), reportDir)

	repo := postgres.NewReportRepository(db)
	imported := 0
	skipped := 0

	for _, file := range files {
		report, err := loadReportFromFile(file)
		if err != nil {
			log.Printf("Failed to load report from %s: %v", file, err)
			skipped++
			continue
		}

		if err := repo.Save(ctx, report); err != nil {
			log.Printf("Failed to save report %s: %v", report.RunID, err)
			skipped++
			continue
		}

		imported++
		log.Printf("Imported report %s from %s", report.RunID, filepath.Base(file))
	}

	log.Printf("Import complete: %d imported, %d skipped", imported, skipped)
}

func findReportFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// loadReportFromFile reads a report written by the CLI. Reports saved before
// run ids existed get a fresh one.
func loadReportFromFile(filePath string) (*models.Report, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	if report.RunID.IsEmpty() {
		report.RunID = core.NewRunID()
	}
	return &report, nil
}
