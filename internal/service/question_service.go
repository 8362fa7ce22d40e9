package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia-api/internal/apperr"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/model"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionsPerPage is the fixed page size of the question list.
const QuestionsPerPage = 10

type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionPage, error)
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) error
	DeleteQuestion(ctx context.Context, id uint) error
	SearchQuestions(ctx context.Context, term string) []dto.QuestionDTO
}

type questionService struct {
	repo         repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

func NewQuestionService(repo repository.QuestionRepository, categoryRepo repository.CategoryRepository) QuestionService {
	return &questionService{repo: repo, categoryRepo: categoryRepo}
}

// ListQuestions returns the 1-indexed page. Every failure, including a page out
// of range, is NotFound. Page 1 of an empty table is an empty page.
func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionPage, error) {
	const op = "list questions"
	if page < 1 {
		return nil, apperr.Wrap(fmt.Errorf("page %d out of range", page), apperr.NotFound, op)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to count questions")
		return nil, apperr.Wrap(err, apperr.NotFound, op)
	}
	// compare against the last page before computing the offset so a huge page cannot overflow
	lastPage := (total + QuestionsPerPage - 1) / QuestionsPerPage
	if page > 1 && int64(page) > lastPage {
		return nil, apperr.Wrap(fmt.Errorf("page %d beyond last page %d", page, lastPage), apperr.NotFound, op)
	}
	offset := (page - 1) * QuestionsPerPage

	questions, err := s.repo.FindPage(ctx, offset, QuestionsPerPage)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int("page", page).Msg("Failed to load question page")
		return nil, apperr.Wrap(err, apperr.NotFound, op)
	}

	categories, err := loadCategoryMap(ctx, s.categoryRepo)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.NotFound, op)
	}

	dtos, err := toQuestionDTOs(questions)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.NotFound, op)
	}
	return &dto.QuestionPage{Questions: dtos, Total: total, Categories: categories}, nil
}

// CreateQuestion inserts a question. Invalid input and insert failures are Unprocessable.
func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) error {
	question, err := req.ToModel()
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Invalid question payload")
		return apperr.Wrap(err, apperr.Unprocessable, "build question")
	}

	if err := s.repo.Create(ctx, question); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to create question in service")
		return apperr.Wrap(err, apperr.Unprocessable, "insert question")
	}
	log.Ctx(ctx).Info().Uint("questionID", question.ID).Int("category", question.Category).Msg("Question created")
	return nil
}

// DeleteQuestion removes a question permanently. A missing id is NotFound, a
// failed delete is Internal.
func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Wrap(err, apperr.NotFound, "find question")
		}
		log.Ctx(ctx).Error().Err(err).Uint("questionID", id).Msg("Failed to look up question")
		return apperr.Wrap(err, apperr.Internal, "find question")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// a concurrent delete won the race
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Wrap(err, apperr.NotFound, "delete question")
		}
		log.Ctx(ctx).Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return apperr.Wrap(err, apperr.Internal, "delete question")
	}
	log.Ctx(ctx).Info().Uint("questionID", id).Msg("Question deleted")
	return nil
}

// SearchQuestions never fails: a storage error is logged and yields no matches.
func (s *questionService) SearchQuestions(ctx context.Context, term string) []dto.QuestionDTO {
	questions, err := s.repo.Search(ctx, term)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("searchTerm", term).Msg("Search failed, returning empty result")
		return []dto.QuestionDTO{}
	}

	dtos, err := toQuestionDTOs(questions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to format search results")
		return []dto.QuestionDTO{}
	}
	return dtos
}

// toQuestionDTOs never returns a nil slice so empty lists encode as [].
func toQuestionDTOs(questions []model.Question) ([]dto.QuestionDTO, error) {
	out := make([]dto.QuestionDTO, len(questions))
	for i := range questions {
		if err := copier.Copy(&out[i], &questions[i]); err != nil {
			return nil, fmt.Errorf("copy question %d: %w", questions[i].ID, err)
		}
	}
	return out, nil
}
