package db

import "database/sql"

// SchemaSQL is the complete modern schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository tests
// load it through GetSchemaSQL() instead of declaring their own tables, so a
// column referenced by code but missing here fails immediately with
// "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Sessions (at most one row: the logged-in account)
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	token TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('Buyer', 'Seller')),
	user_id INTEGER NOT NULL DEFAULT 0,
	email TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Activity (local audit trail of mutating API calls)
CREATE TABLE IF NOT EXISTS activity (
	id TEXT PRIMARY KEY,
	request_id TEXT NOT NULL DEFAULT '',
	actor TEXT NOT NULL DEFAULT '',
	action TEXT NOT NULL,
	entity_id TEXT NOT NULL DEFAULT '',
	detail TEXT NOT NULL DEFAULT '',
	outcome TEXT NOT NULL DEFAULT 'ok',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activity_created ON activity(created_at);
`

// InitSchema creates the schema on a fresh database, or runs pending migrations.
func InitSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(db)
	}

	// Completely fresh install - create modern schema directly and mark
	// every migration as applied.
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(db); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
