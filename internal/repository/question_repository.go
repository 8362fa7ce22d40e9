package repository

import (
	"context"
	"strings"

	"github.com/lshigami/trivia-api/internal/model"
	"gorm.io/gorm"
)

// AllCategories disables the category filter in RandomExcluding.
const AllCategories = 0

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, offset, limit int) ([]model.Question, error)
	Search(ctx context.Context, term string) ([]model.Question, error)
	FindByCategory(ctx context.Context, categoryID int) ([]model.Question, error)
	RandomExcluding(ctx context.Context, categoryID int, excludedIDs []uint) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// Delete removes the row permanently. It returns gorm.ErrRecordNotFound when no row matched.
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *questionRepository) FindPage(ctx context.Context, offset, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search matches term case-insensitively anywhere in the question text.
// LIKE wildcards in term are matched literally. On sqlite the case folding is
// ASCII-only, so "é" does not match "É" there.
func (r *questionRepository) Search(ctx context.Context, term string) ([]model.Question, error) {
	condition, pattern := searchCondition(r.db.Dialector.Name(), term)

	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where(condition, pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// searchCondition uses ILIKE on postgres, which folds case by locale. Other
// dialects compare LOWER(question) against a lowercased pattern.
func searchCondition(dialect, term string) (string, string) {
	if dialect == "postgres" {
		return `question ILIKE ? ESCAPE '\'`, "%" + escapeLike(term) + "%"
	}
	return `LOWER(question) LIKE ? ESCAPE '\'`, "%" + escapeLike(strings.ToLower(term)) + "%"
}

func (r *questionRepository) FindByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("category = ?", categoryID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// RandomExcluding picks one question uniformly at random, optionally restricted to
// categoryID, skipping excludedIDs. It returns gorm.ErrRecordNotFound when nothing is left.
func (r *questionRepository) RandomExcluding(ctx context.Context, categoryID int, excludedIDs []uint) (*model.Question, error) {
	query := r.db.WithContext(ctx)
	if categoryID != AllCategories {
		query = query.Where("category = ?", categoryID)
	}
	// NOT IN with an empty list renders as NOT IN (NULL), which matches nothing
	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}

	var question model.Question
	if err := query.Order("RANDOM()").Take(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
