package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestPrepareMigrationsRendersSchemaAndPrefix(t *testing.T) {
	rendered, err := PrepareMigrations("trainingdata", "ukrocr_")
	if err != nil {
		t.Fatalf("PrepareMigrations failed: %v", err)
	}

	entries, err := fs.ReadDir(rendered, ".")
	if err != nil {
		t.Fatalf("failed to list rendered migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no migration files rendered")
	}

	for _, entry := range entries {
		data, err := fs.ReadFile(rendered, entry.Name())
		if err != nil {
			t.Fatalf("failed to read rendered migration %s: %v", entry.Name(), err)
		}

		content := string(data)
		if strings.Contains(content, "SCHEMA_NAME") || strings.Contains(content, "TABLE_PREFIX_") {
			t.Errorf("migration %s still contains template placeholders:\n%s", entry.Name(), content)
		}
		if !strings.Contains(content, "trainingdata.ukrocr_") {
			t.Errorf("migration %s does not reference the rendered tables:\n%s", entry.Name(), content)
		}
	}
}
