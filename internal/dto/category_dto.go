package dto

// CategoryMap maps category id to its type label.
type CategoryMap map[uint]string

// CategoriesResponse is returned by GET /categories.
type CategoriesResponse struct {
	Success    bool        `json:"success" example:"true"`
	Categories CategoryMap `json:"categories"`
}

// CategoryQuestions is the result of filtering questions by one category.
type CategoryQuestions struct {
	Questions       []QuestionDTO
	CurrentCategory string
}

// CategoryQuestionsResponse is returned by GET /categories/{id}/questions.
type CategoryQuestionsResponse struct {
	Success         bool          `json:"success" example:"true"`
	Questions       []QuestionDTO `json:"questions"`
	TotalQuestions  int           `json:"totalQuestions" example:"1"`
	CurrentCategory string        `json:"currentCategory" example:"Science"`
}
