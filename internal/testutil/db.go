// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/lshigami/trivia-api/config"
	"github.com/lshigami/trivia-api/database"
	"github.com/lshigami/trivia-api/internal/model"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database closed at test cleanup.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.Database{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SeedCategories inserts the given id→type pairs.
func SeedCategories(t *testing.T, db *gorm.DB, categories ...model.Category) {
	t.Helper()
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			t.Fatalf("seed category %d: %v", categories[i].ID, err)
		}
	}
}

// SeedQuestions inserts questions and returns them with ids assigned.
func SeedQuestions(t *testing.T, db *gorm.DB, questions ...model.Question) []model.Question {
	t.Helper()
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("seed question %q: %v", questions[i].Question, err)
		}
	}
	return questions
}

// CountQuestions returns the number of stored questions.
func CountQuestions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Question{}).Count(&n).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	return n
}

// Scenario seeds categories 1 Science, 2 Art, 3 History and two questions,
// id 1 in category 1 and id 2 in category 2.
func Scenario(t *testing.T, db *gorm.DB) {
	t.Helper()
	SeedCategories(t, db,
		model.Category{ID: 1, Type: "Science"},
		model.Category{ID: 2, Type: "Art"},
		model.Category{ID: 3, Type: "History"},
	)
	SeedQuestions(t, db,
		model.Question{ID: 1, Question: "What is the chemical symbol for gold?", Answer: "Au", Category: 1, Difficulty: 2},
		model.Question{ID: 2, Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci", Category: 2, Difficulty: 1},
	)
}
