package service

import (
	"context"
	"errors"

	"github.com/lshigami/trivia-api/internal/apperr"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CategoryService interface {
	ListCategories(ctx context.Context) (dto.CategoryMap, error)
	GetCategoryQuestions(ctx context.Context, categoryID uint) (*dto.CategoryQuestions, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, questionRepo repository.QuestionRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, questionRepo: questionRepo}
}

// ListCategories fails with Unprocessable on any storage error.
func (s *categoryService) ListCategories(ctx context.Context) (dto.CategoryMap, error) {
	categories, err := loadCategoryMap(ctx, s.categoryRepo)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Unprocessable, "list categories")
	}
	return categories, nil
}

// GetCategoryQuestions returns every question filed under categoryID. An unknown
// category is NotFound; storage failures are Internal.
func (s *categoryService) GetCategoryQuestions(ctx context.Context, categoryID uint) (*dto.CategoryQuestions, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Ctx(ctx).Warn().Uint("categoryID", categoryID).Msg("Category not found")
			return nil, apperr.Wrap(err, apperr.NotFound, "find category")
		}
		log.Ctx(ctx).Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to load category")
		return nil, apperr.Wrap(err, apperr.Internal, "find category")
	}

	questions, err := s.questionRepo.FindByCategory(ctx, int(categoryID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to load questions by category")
		return nil, apperr.Wrap(err, apperr.Internal, "find questions by category")
	}

	dtos, err := toQuestionDTOs(questions)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "format questions")
	}
	return &dto.CategoryQuestions{Questions: dtos, CurrentCategory: category.Type}, nil
}

func loadCategoryMap(ctx context.Context, repo repository.CategoryRepository) (dto.CategoryMap, error) {
	categories, err := repo.FindAll(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to get categories from repository")
		return nil, err
	}
	out := make(dto.CategoryMap, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out, nil
}
