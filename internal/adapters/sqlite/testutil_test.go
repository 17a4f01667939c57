// Package sqlite_test contains integration tests for the local SQLite store.
//
// Tables come from db.GetSchemaSQL() only, so tests and production share one schema.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open test db")
	testDB.SetMaxOpenConns(1)
	t.Cleanup(func() { testDB.Close() })

	_, err = testDB.Exec(db.GetSchemaSQL())
	require.NoError(t, err, "failed to create schema")

	return testDB
}

// actorContext returns a context as the services build it: request id plus acting account.
func actorContext(requestID, actor string) context.Context {
	ctx := ctxutil.WithRequestID(context.Background(), requestID)
	return ctxutil.WithActorID(ctx, actor)
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
