package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func schemaVersion(t *testing.T, database *sql.DB) int {
	t.Helper()
	var v int
	if err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	return v
}

func TestOpen_FreshInstall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "atelier.db")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if got := schemaVersion(t, database); got != LatestVersion() {
		t.Errorf("schema version = %d, want %d", got, LatestVersion())
	}

	if _, err := database.Exec("INSERT INTO activity (id, action, actor) VALUES ('ACT-1', 'login', 'a@b.c')"); err != nil {
		t.Errorf("activity table missing columns: %v", err)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atelier.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer second.Close()

	if got := schemaVersion(t, second); got != LatestVersion() {
		t.Errorf("schema version = %d, want %d", got, LatestVersion())
	}
}

func TestRunMigrations_MatchesSchemaSQL(t *testing.T) {
	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer database.Close()
	database.SetMaxOpenConns(1)

	// An empty version table sends InitSchema down the migration path.
	if err := createVersionTable(database); err != nil {
		t.Fatal(err)
	}
	if err := InitSchema(database); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	if got := schemaVersion(t, database); got != LatestVersion() {
		t.Errorf("schema version = %d, want %d", got, LatestVersion())
	}
	if _, err := database.Exec("INSERT INTO activity (id, request_id, actor, action, entity_id, detail, outcome) VALUES ('ACT-1', 'req', 'x', 'rate', '1', 'rating=4', 'ok')"); err != nil {
		t.Errorf("migrated activity table differs from SchemaSQL: %v", err)
	}
	if _, err := database.Exec("INSERT INTO sessions (id, token, role, user_id, email) VALUES (1, 'tok', 'Buyer', 7, 'a@b.c')"); err != nil {
		t.Errorf("migrated sessions table differs from SchemaSQL: %v", err)
	}
}
