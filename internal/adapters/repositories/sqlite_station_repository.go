package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"transit-route-service/internal/ports"
)

// SQLite-backed implementation of the StationRepository port. The directory is
// refreshed from the remote feed on startup and served locally afterwards.
type SqliteStationRepository struct{ DB *sql.DB }

func NewSqliteStationRepository(db *sql.DB) *SqliteStationRepository {
	return &SqliteStationRepository{DB: db}
}

// Initialize the SQLite station directory schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		station_index INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL
	);
	`

	if _, err := db.Exec(createStationsQuery); err != nil {
		return fmt.Errorf("init schema: create stations table: %w", err)
	}

	return nil
}

// Replace the stored directory with the given records.
func (s *SqliteStationRepository) UpsertStations(ctx context.Context, records []ports.StationRecord) error {
	if s.DB == nil {
		return errors.New("sqlite station repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO stations (
		station_index,
		name,
		latitude,
		longitude
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("upsert stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if rec.Index < 0 {
			return fmt.Errorf("upsert stations: invalid station index %d", rec.Index)
		}
		if strings.TrimSpace(rec.Name) == "" {
			return fmt.Errorf("upsert stations: station %d has empty name", rec.Index)
		}

		if _, err := stmt.ExecContext(ctx, rec.Index, rec.Name, rec.Latitude, rec.Longitude); err != nil {
			return fmt.Errorf("upsert stations: insert station_index=%d: %w", rec.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert stations: commit tx: %w", err)
	}

	return nil
}

// Return all stations ordered by index.
func (s *SqliteStationRepository) ListStations(ctx context.Context) ([]ports.StationRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
	}

	query := `
	SELECT
		station_index,
		name,
		latitude,
		longitude
	FROM stations
	ORDER BY station_index;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]ports.StationRecord, 0, 300)
	for rows.Next() {
		var rec ports.StationRecord
		if err := rows.Scan(&rec.Index, &rec.Name, &rec.Latitude, &rec.Longitude); err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		stations = append(stations, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}
