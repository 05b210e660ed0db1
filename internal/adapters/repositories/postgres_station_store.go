package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transit-route-service/internal/ports"
)

// Postgres variant of the station directory store, used by the stationtool
// loader for shared deployments.
type PostgresStationStore struct{ DB *sql.DB }

func NewPostgresStationStore(db *sql.DB) *PostgresStationStore {
	return &PostgresStationStore{DB: db}
}

// Initialize the Postgres station directory schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		station_index INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := db.Exec(createStationsQuery); err != nil {
		return fmt.Errorf("init schema: create stations table: %w", err)
	}

	return nil
}

// Replace the stored directory with the given records.
func (s *PostgresStationStore) UpsertStations(ctx context.Context, records []ports.StationRecord) error {
	if s.DB == nil {
		return errors.New("postgres station store: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO stations (station_index, name, latitude, longitude)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (station_index) DO UPDATE
	SET name = EXCLUDED.name,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`)
	if err != nil {
		return fmt.Errorf("upsert stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
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
func (s *PostgresStationStore) ListStations(ctx context.Context) ([]ports.StationRecord, error) {
	if s.DB == nil {
		return nil, errors.New("postgres station store: DB is nil")
	}

	query := `
	SELECT station_index, name, latitude, longitude
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
