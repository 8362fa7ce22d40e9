package service

import (
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia-api/internal/apperr"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	NextQuestion(ctx context.Context, categoryID int, previousIDs []uint) (*dto.QuestionDTO, error)
}

type quizService struct {
	questionRepo repository.QuestionRepository
}

func NewQuizService(questionRepo repository.QuestionRepository) QuizService {
	return &quizService{questionRepo: questionRepo}
}

// NextQuestion picks a random question the player has not seen. categoryID 0
// plays across all categories. It returns (nil, nil) when no candidate is left.
func (s *quizService) NextQuestion(ctx context.Context, categoryID int, previousIDs []uint) (*dto.QuestionDTO, error) {
	question, err := s.questionRepo.RandomExcluding(ctx, categoryID, previousIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Ctx(ctx).Info().Int("category", categoryID).Int("seen", len(previousIDs)).Msg("Quiz exhausted")
			return nil, nil
		}
		log.Ctx(ctx).Error().Err(err).Int("category", categoryID).Msg("Failed to pick quiz question")
		return nil, apperr.Wrap(err, apperr.Internal, "pick quiz question")
	}

	var resp dto.QuestionDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "format quiz question")
	}
	return &resp, nil
}
