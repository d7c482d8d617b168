package repositories

import (
	"context"
	"database/sql"
	"delivery-time-simulator/internal/domain"
	"errors"
	"fmt"
	"strings"
)

// SQLite-backed implementation of the WeatherIndexRepository port.
type SqliteWeatherIndexRepository struct{ DB *sql.DB }

func NewSqliteWeatherIndexRepository(db *sql.DB) *SqliteWeatherIndexRepository {
	return &SqliteWeatherIndexRepository{DB: db}
}

// Return all weather indices stored in the database.
func (s *SqliteWeatherIndexRepository) ListIndices(ctx context.Context) ([]domain.WeatherIndex, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite weather repository: DB is nil")
	}

	query := `
	SELECT
		code,
		description,
		daily_probability
	FROM weather_indices
	ORDER BY code;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list weather indices: query weather_indices table: %w", err)
	}
	defer rows.Close()

	indices := make([]domain.WeatherIndex, 0, 16)
	for rows.Next() {
		var idx domain.WeatherIndex
		if err := rows.Scan(&idx.Code, &idx.Description, &idx.DailyProbability); err != nil {
			return nil, fmt.Errorf("list weather indices: scan row: %w", err)
		}
		indices = append(indices, idx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list weather indices: row iteration: %w", err)
	}

	return indices, nil
}

// Return the indices for the given codes. Every requested code must
// exist; a missing mapping is an error rather than a silent zero.
func (s *SqliteWeatherIndexRepository) GetIndices(ctx context.Context, codes []string) ([]domain.WeatherIndex, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite weather repository: DB is nil")
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(codes))
	ph := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		uniq = append(uniq, c)
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return []domain.WeatherIndex{}, nil
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
		code,
		description,
		daily_probability
	FROM weather_indices
	WHERE code IN (%s)
	ORDER BY code;
	`, strings.Join(ph, ","))

	args := make([]any, 0, len(uniq))
	for _, c := range uniq {
		args = append(args, c)
	}

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get weather indices: query weather_indices table: %w", err)
	}
	defer rows.Close()

	found := make(map[string]domain.WeatherIndex, len(uniq))
	for rows.Next() {
		var idx domain.WeatherIndex
		if err := rows.Scan(&idx.Code, &idx.Description, &idx.DailyProbability); err != nil {
			return nil, fmt.Errorf("get weather indices: scan row: %w", err)
		}
		found[idx.Code] = idx
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get weather indices: row iteration: %w", err)
	}

	out := make([]domain.WeatherIndex, 0, len(uniq))
	for _, c := range uniq {
		idx, ok := found[c]
		if !ok {
			return nil, fmt.Errorf("get weather indices: unknown index code %q: %w", c, domain.ErrInvalidParameter)
		}
		out = append(out, idx)
	}

	return out, nil
}
