package dto

import "fmt"

// QuizCategory identifies the category a quiz is played in. ID 0 means all categories.
type QuizCategory struct {
	ID   any    `json:"id" swaggertype:"integer" example:"0"`
	Type string `json:"type,omitempty" example:"Science"`
}

// QuizRequest is the body of POST /quizzes. The client sends every question id
// it has already seen; the server keeps no quiz state.
type QuizRequest struct {
	PreviousQuestions []any         `json:"previous_questions" swaggertype:"array,integer"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

// Normalize coerces the category id and previous ids. A missing previous list is empty.
func (r QuizRequest) Normalize() (categoryID int, previous []uint, err error) {
	if r.QuizCategory == nil || r.QuizCategory.ID == nil {
		return 0, nil, fmt.Errorf("quiz_category.id is required")
	}
	categoryID, err = toInt(r.QuizCategory.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("quiz_category.id: %w", err)
	}

	previous = make([]uint, 0, len(r.PreviousQuestions))
	for i, raw := range r.PreviousQuestions {
		id, err := toID(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("previous_questions[%d]: invalid id %v", i, raw)
		}
		previous = append(previous, id)
	}
	return categoryID, previous, nil
}

// QuizResponse carries the next question, or null once the quiz is exhausted.
type QuizResponse struct {
	Success  bool         `json:"success" example:"true"`
	Question *QuestionDTO `json:"question"`
}
