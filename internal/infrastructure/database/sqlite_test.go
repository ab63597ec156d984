package database

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLite_RunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"users", "house_records", "estimation_records"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s: %v", table, err)
		}
	}

	// reopening must not re-apply migrations
	db.Close()
	db2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	db2.Close()
}
