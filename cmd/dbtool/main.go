package main

import (
	"database/sql"
	"delivery-time-simulator/internal/adapters/repositories"
	"delivery-time-simulator/internal/config"
	"delivery-time-simulator/internal/platform/db"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool pushes the weather-index mapping into a shared Postgres
// instance, for deployments where the collaborator data is maintained
// centrally rather than in the per-instance SQLite file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/weather_indices.json")
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := initSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := seedFromJSON(db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS weather_indices (
		code TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		daily_probability DOUBLE PRECISION NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create weather_indices: %w", err)
	}
	return nil
}

func seedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed weather indices: read %q: %w", jsonPath, err)
	}

	var data []repositories.WeatherIndexSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed weather indices: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed weather indices: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO weather_indices (code, description, daily_probability)
	VALUES ($1, $2, $3)
	ON CONFLICT (code) DO UPDATE SET
		description = EXCLUDED.description,
		daily_probability = EXCLUDED.daily_probability;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed weather indices: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range data {
		code := strings.TrimSpace(item.Code)
		if code == "" {
			return fmt.Errorf("seed weather indices: item at index %d: code cannot be empty", i+1)
		}
		if item.DailyProbability < 0 || item.DailyProbability > 1 {
			return fmt.Errorf(
				"seed weather indices: index %q: daily_probability must be in [0,1], got %g",
				code, item.DailyProbability,
			)
		}
		if _, err := stmt.Exec(code, strings.TrimSpace(item.Description), item.DailyProbability); err != nil {
			return fmt.Errorf("seed weather indices: insert code=%q: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed weather indices: commit tx: %w", err)
	}

	return nil
}
