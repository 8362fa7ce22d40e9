package dto

import (
	"fmt"

	"github.com/lshigami/trivia-api/internal/model"
)

// CreateQuestionRequest is the body of POST /questions. Category and difficulty
// accept JSON numbers or numeric strings.
type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required,notblank" example:"What is the largest planet?"`
	Answer     string `json:"answer" binding:"required,notblank" example:"Jupiter"`
	Category   any    `json:"category" swaggertype:"integer" example:"1"`
	Difficulty any    `json:"difficulty" swaggertype:"integer" example:"2"`
}

// ToModel coerces the numeric fields and builds the row to insert.
func (r CreateQuestionRequest) ToModel() (*model.Question, error) {
	category, err := requiredInt("category", r.Category)
	if err != nil {
		return nil, err
	}
	difficulty, err := requiredInt("difficulty", r.Difficulty)
	if err != nil {
		return nil, err
	}
	return &model.Question{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   category,
		Difficulty: difficulty,
	}, nil
}

// SearchQuestionsRequest is the body of POST /questions/search_query.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" example:"title"`
}

func requiredInt(field string, v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%s is required", field)
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return n, nil
}
