package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations should validate: %v", err)
	}
}

func TestInitSchemaCoversAllTables(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}

	var schema string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
			if err != nil {
				t.Fatalf("read migration: %v", err)
			}
			schema += string(b)
		}
	}

	for _, table := range []string{"reservations", "creneaux_expedition", "colis"} {
		if !strings.Contains(schema, "CREATE TABLE "+table) {
			t.Fatalf("schema missing table %s", table)
		}
	}
	if !strings.Contains(schema, "creneau_id") {
		t.Fatal("colis must carry the creneau_id foreign key")
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Tracking Index!")
	if err != nil {
		t.Fatalf("CreateSQLMigration failed: %v", err)
	}
	if !strings.HasSuffix(path, "_add_tracking_index.sql") {
		t.Fatalf("unexpected filename %q", path)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration should validate: %v", err)
	}
}
