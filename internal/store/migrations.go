package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS recommendations (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at    TEXT NOT NULL,
			input_text    TEXT NOT NULL,
			goal          TEXT NOT NULL,
			template_id   TEXT NOT NULL,
			template_name TEXT NOT NULL,
			score         INTEGER NOT NULL,
			reason        TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_recommendations_created ON recommendations(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_template ON recommendations(template_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.conn.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}
	return nil
}
