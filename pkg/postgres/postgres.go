package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ds124wfegd/event-catalog/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

// RunMigrations creates the catalog schema once at startup. Every
// statement is idempotent, so restarts are safe.
func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS event_tracks (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			cover_image BYTEA,
			overlay_image BYTEA
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			event_track_id INTEGER REFERENCES event_tracks(id),
			name TEXT NOT NULL,
			description TEXT,
			long_description TEXT,
			speakers TEXT[],
			initial_date TIMESTAMP,
			final_date TIMESTAMP,
			location TEXT,
			capacity INTEGER DEFAULT 0,
			available_seats INTEGER DEFAULT 0,
			cover_image BYTEA,
			card_image BYTEA,
			event_track_name TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS feedbacks (
			id SERIAL PRIMARY KEY,
			user_id TEXT,
			event_id INTEGER NOT NULL REFERENCES events(id),
			stars INTEGER CHECK (stars BETWEEN 1 AND 5),
			comment TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS recommended (
			id SERIAL PRIMARY KEY,
			event_id INTEGER UNIQUE REFERENCES events(id)
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_events_track_id ON events(event_track_id)`,
		`CREATE INDEX IF NOT EXISTS idx_feedbacks_event_id ON feedbacks(event_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
