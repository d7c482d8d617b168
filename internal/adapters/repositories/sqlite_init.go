package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWeatherIndicesQuery := `
	CREATE TABLE IF NOT EXISTS weather_indices (
		code TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		daily_probability REAL NOT NULL
	);
	`

	if _, err := tx.Exec(createWeatherIndicesQuery); err != nil {
		return fmt.Errorf("init schema: exec create weather_indices: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type WeatherIndexSeed struct {
	Code             string  `json:"code"`
	Description      string  `json:"description"`
	DailyProbability float64 `json:"daily_probability"`
}

// Populate the database with weather-index data from a JSON file.
// Probabilities outside [0,1] are rejected before any row is written.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed weather indices: read %q: %w", jsonPath, err)
	}

	var data []WeatherIndexSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed weather indices: parse json: %w", err)
	}

	rows := make([]WeatherIndexSeed, 0, len(data))
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
		rows = append(rows, WeatherIndexSeed{
			Code:             code,
			Description:      strings.TrimSpace(item.Description),
			DailyProbability: item.DailyProbability,
		})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed weather indices: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO weather_indices (
		code,
		description,
		daily_probability
	)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed weather indices: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Code, r.Description, r.DailyProbability); err != nil {
			return fmt.Errorf("seed weather indices: insert code=%q: %w", r.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed weather indices: commit tx: %w", err)
	}

	return nil
}
