package encounters

import (
	"context"
	"database/sql"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/repositories/encounters/migrations"
)

const migrationTable = "schema_migrations"

// SQLiteConfig contains configuration for the SQLite encounter repository
type SQLiteConfig struct {
	Path string
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg == nil || strings.TrimSpace(cfg.Path) == "" {
		vb.RequiredField("Path")
	}
	return vb.Build()
}

// SQLiteRepository implements Repository on a local SQLite file
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLite opens the database at cfg.Path and applies embedded migrations
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to ping sqlite db")
	}
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to run migrations")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Upsert stores an encounter, replacing any record with the same ID
func (r *SQLiteRepository) Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error) {
	if err := validateUpsert(input); err != nil {
		return nil, err
	}

	e := input.Encounter
	body, err := marshalEncounter(e)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO encounters (id, created_at, difficulty, adjusted_xp, classification, outcome, provider, tags, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   created_at = excluded.created_at,
		   difficulty = excluded.difficulty,
		   adjusted_xp = excluded.adjusted_xp,
		   classification = excluded.classification,
		   outcome = excluded.outcome,
		   provider = excluded.provider,
		   tags = excluded.tags,
		   body = excluded.body`,
		e.ID,
		e.CreatedAt.UTC().UnixMilli(),
		int(e.Difficulty),
		e.AdjustedXP,
		e.Classification,
		string(e.Outcome),
		string(e.Provider),
		strings.Join(e.Tags, ","),
		string(body),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store encounter")
	}

	return &UpsertOutput{Encounter: e}, nil
}

// Get retrieves an encounter by ID
func (r *SQLiteRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM encounters WHERE id = ?`, input.ID).Scan(&body)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("encounter %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get encounter")
	}

	encounter, err := unmarshalEncounter([]byte(body))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Encounter: encounter}, nil
}

// List returns encounters newest first
func (r *SQLiteRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT body FROM encounters ORDER BY created_at DESC, id DESC LIMIT ?`, listLimit(input))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list encounters")
	}
	defer func() { _ = rows.Close() }()

	out := []*entities.Encounter{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, errors.Wrapf(err, "failed to scan encounter")
		}
		encounter, err := unmarshalEncounter([]byte(body))
		if err != nil {
			return nil, err
		}
		out = append(out, encounter)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list encounters")
	}

	return &ListOutput{Encounters: out}, nil
}

// Delete removes an encounter
func (r *SQLiteRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM encounters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete encounter")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete encounter")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("encounter %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

// applyMigrations runs each embedded .sql file once, in name order, recording it in schema_migrations
func applyMigrations(db *sql.DB, migrationFS fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationTable +
		` (name TEXT PRIMARY KEY, applied_at INTEGER NOT NULL)`); err != nil {
		return errors.Wrapf(err, "failed to ensure migration table")
	}

	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return errors.Wrapf(err, "failed to read migrations")
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		var found int
		err := db.QueryRow(`SELECT 1 FROM `+migrationTable+` WHERE name = ?`, name).Scan(&found)
		if err == nil {
			continue
		}
		if !stderrors.Is(err, sql.ErrNoRows) {
			return errors.Wrapf(err, "failed to check migration %s", name)
		}

		content, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", name)
		}

		tx, err := db.Begin()
		if err != nil {
			return errors.Wrapf(err, "failed to begin migration %s", name)
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to apply migration %s", name)
		}
		if _, err := tx.Exec(`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
			name, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to record migration %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit migration %s", name)
		}
	}

	return nil
}

// upSection returns the SQL between "-- +migrate Up" and "-- +migrate Down"
func upSection(content string) string {
	_, up, found := strings.Cut(content, "-- +migrate Up")
	if !found {
		return content
	}
	up, _, _ = strings.Cut(up, "-- +migrate Down")
	return up
}
