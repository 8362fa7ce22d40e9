package database

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lshigami/trivia-api/config"
	"github.com/lshigami/trivia-api/internal/model"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured database and closes it when the fx app stops.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info().Msg("Closing database connection")
			return sqlDB.Close()
		},
	})
	return db, nil
}

// Open connects with the postgres or sqlite dialector depending on cfg.Driver.
func Open(cfg config.Database) (*gorm.DB, error) {
	dbLogger := logger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		if err := ensureDirForSQLite(cfg.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(cfg.Path)
	case "postgres", "":
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if cfg.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// every new connection to :memory: is a fresh database
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("driver", db.Dialector.Name()).Msg("Database connection established")
	return db, nil
}

// Migrate creates or updates the categories and questions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Category{}, &model.Question{}); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

// Seed inserts the default categories when the categories table is empty.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		log.Info().Int64("categories", count).Msg("Categories present, skipping seed")
		return nil
	}

	categories := make([]model.Category, len(model.DefaultCategories))
	copy(categories, model.DefaultCategories)
	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	log.Info().Int("categories", len(categories)).Msg("Seeded default categories")
	return nil
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
