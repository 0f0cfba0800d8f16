// Package storage provides SQLite-based persistence for city saves.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The simulation only produces and consumes plain data; this package owns
// the mapping to rows.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/quintrel/gridrealm/internal/sim"
)

// Store manages the SQLite database connection for save persistence.
type Store struct {
	db *sql.DB
}

// CityInfo summarizes one saved city for listings.
type CityInfo struct {
	SlotID     string
	Name       string
	Day        int
	Population int
	Money      int
	UpdatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS cities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL UNIQUE,
			grid_json TEXT NOT NULL,
			stats_json TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_cities_name ON cities(name);
		CREATE INDEX IF NOT EXISTS idx_cities_updated ON cities(updated_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCity upserts a city save under the given name. The grid and stats
// snapshots are stored as JSON.
func (s *Store) SaveCity(name string, grid sim.Grid, stats sim.CityStats) error {
	gridJSON, err := json.Marshal(grid)
	if err != nil {
		return fmt.Errorf("storage: cannot encode grid: %w", err)
	}
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("storage: cannot encode stats: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO cities (slot_id, name, grid_json, stats_json)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			grid_json = excluded.grid_json,
			stats_json = excluded.stats_json,
			updated_at = CURRENT_TIMESTAMP`,
		uuid.NewString(), name, string(gridJSON), string(statsJSON),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save city %q: %w", name, err)
	}
	return nil
}

// LoadCity returns the saved grid and stats for the given name.
// The boolean is false if no save exists; a first run is not an error.
func (s *Store) LoadCity(name string) (sim.Grid, sim.CityStats, bool, error) {
	var gridJSON, statsJSON string
	err := s.db.QueryRow(
		"SELECT grid_json, stats_json FROM cities WHERE name = ?",
		name,
	).Scan(&gridJSON, &statsJSON)

	if err == sql.ErrNoRows {
		return sim.Grid{}, sim.CityStats{}, false, nil
	}
	if err != nil {
		return sim.Grid{}, sim.CityStats{}, false, fmt.Errorf("storage: cannot query city %q: %w", name, err)
	}

	var grid sim.Grid
	if err := json.Unmarshal([]byte(gridJSON), &grid); err != nil {
		return sim.Grid{}, sim.CityStats{}, false, fmt.Errorf("storage: corrupt grid for %q: %w", name, err)
	}
	var stats sim.CityStats
	if err := json.Unmarshal([]byte(statsJSON), &stats); err != nil {
		return sim.Grid{}, sim.CityStats{}, false, fmt.Errorf("storage: corrupt stats for %q: %w", name, err)
	}

	return grid, stats, true, nil
}

// LatestCity returns the name of the most recently updated save.
// The boolean is false when no saves exist.
func (s *Store) LatestCity() (string, bool, error) {
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM cities ORDER BY updated_at DESC LIMIT 1",
	).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query latest city: %w", err)
	}
	return name, true, nil
}

// ListCities returns all saved cities, most recently updated first.
func (s *Store) ListCities() ([]CityInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot_id, name, stats_json, updated_at
		 FROM cities
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cities: %w", err)
	}
	defer rows.Close()

	var infos []CityInfo
	for rows.Next() {
		var info CityInfo
		var statsJSON string
		var updatedAt any
		if err := rows.Scan(&info.SlotID, &info.Name, &statsJSON, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		var stats sim.CityStats
		if err := json.Unmarshal([]byte(statsJSON), &stats); err == nil {
			info.Day = stats.Day
			info.Population = stats.Population
			info.Money = stats.Money
		}
		info.UpdatedAt = parseDatetime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return infos, nil
}

// DeleteCity removes a saved city by name.
func (s *Store) DeleteCity(name string) error {
	res, err := s.db.Exec("DELETE FROM cities WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete city %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: no save named %q", name)
	}
	return nil
}

// parseDatetime handles the driver returning either time.Time or string.
func parseDatetime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
