package trackstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/arqui-vision/trackfusion/tracks"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store persists ExportManifest/TrackMap pairs to a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite database at path and brings its
// schema up to the latest migration.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("trackstore: open %s: %w", path, err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func migrateUp(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("trackstore: load embedded migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("trackstore: create sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("trackstore: create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("trackstore: apply migrations: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTracks persists manifest and every observation in tm under
// manifest.RunID, inside a single transaction.
func (s *Store) SaveTracks(ctx context.Context, manifest tracks.ExportManifest[string], tm tracks.TrackMap[string]) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("trackstore: begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (run_id, node_count, track_count, min_track_length, min_pair_occurrences)
		VALUES (?, ?, ?, ?, ?)`,
		manifest.RunID, manifest.NodeCount, manifest.TrackCount, manifest.MinTrackLength, manifest.MinPairOccurrences,
	)
	if err != nil {
		return fmt.Errorf("trackstore: insert run %s: %w", manifest.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO observations (run_id, track_id, image_id, feat_idx) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("trackstore: prepare observation insert: %w", err)
	}
	defer stmt.Close()

	for trackID, obs := range tm {
		for imageID, feat := range obs {
			if _, err := stmt.ExecContext(ctx, manifest.RunID, int(trackID), imageID, int(feat)); err != nil {
				return fmt.Errorf("trackstore: insert observation for track %d: %w", trackID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("trackstore: commit run %s: %w", manifest.RunID, err)
	}

	return nil
}

// LoadTracks reconstructs the TrackMap saved under runID. It returns
// ErrRunNotFound if no such run exists.
func (s *Store) LoadTracks(ctx context.Context, runID string) (tracks.TrackMap[string], error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM runs WHERE run_id = ?)`, runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("trackstore: check run %s: %w", runID, err)
	}
	if !exists {
		return nil, ErrRunNotFound
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT track_id, image_id, feat_idx FROM observations WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("trackstore: query observations for %s: %w", runID, err)
	}
	defer rows.Close()

	tm := make(tracks.TrackMap[string])
	for rows.Next() {
		var trackID int
		var imageID string
		var feat int
		if err := rows.Scan(&trackID, &imageID, &feat); err != nil {
			return nil, fmt.Errorf("trackstore: scan observation for %s: %w", runID, err)
		}

		obs, ok := tm[tracks.TrackId(trackID)]
		if !ok {
			obs = make(map[string]tracks.FeatIdx)
			tm[tracks.TrackId(trackID)] = obs
		}
		obs[imageID] = tracks.FeatIdx(feat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trackstore: iterate observations for %s: %w", runID, err)
	}

	return tm, nil
}
