package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lshigami/trivia-api/config"
	"github.com/lshigami/trivia-api/internal/model"
)

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(config.Database{Driver: "mssql"}); err == nil {
		t.Fatal("Open() error = nil, want unsupported driver")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := Open(config.Database{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := Seed(ctx, db); err != nil {
			t.Fatalf("Seed() run %d error = %v", i, err)
		}
	}

	var categories []model.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		t.Fatalf("find categories: %v", err)
	}
	if len(categories) != len(model.DefaultCategories) {
		t.Fatalf("got %d categories, want %d", len(categories), len(model.DefaultCategories))
	}
	for i, c := range categories {
		if c != model.DefaultCategories[i] {
			t.Errorf("category[%d] = %+v, want %+v", i, c, model.DefaultCategories[i])
		}
	}
}

func TestEnsureDirForSQLite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if err := ensureDirForSQLite("file:" + filepath.Join(dir, "trivia.db") + "?_fk=1"); err != nil {
		t.Fatalf("ensureDirForSQLite() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("directory %q not created: %v", dir, err)
	}
	if err := ensureDirForSQLite(":memory:"); err != nil {
		t.Errorf("ensureDirForSQLite(:memory:) error = %v", err)
	}
}
