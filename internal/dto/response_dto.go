package dto

// QuestionDTO is the public shape of a question.
type QuestionDTO struct {
	ID         uint   `json:"id" example:"1"`
	Question   string `json:"question" example:"What is the largest planet?"`
	Answer     string `json:"answer" example:"Jupiter"`
	Category   int    `json:"category" example:"1"`
	Difficulty int    `json:"difficulty" example:"2"`
}

// QuestionPage is one page of questions plus the data the list view needs.
type QuestionPage struct {
	Questions  []QuestionDTO
	Total      int64
	Categories CategoryMap
}

// QuestionPageResponse is returned by GET /questions. currentCategory repeats the
// category map because the web client reads it in the unfiltered view.
type QuestionPageResponse struct {
	Success         bool          `json:"success" example:"true"`
	Questions       []QuestionDTO `json:"questions"`
	TotalQuestions  int64         `json:"totalQuestions" example:"19"`
	Categories      CategoryMap   `json:"categories"`
	CurrentCategory CategoryMap   `json:"currentCategory"`
}

// QuestionListResponse is returned by POST /questions/search_query.
type QuestionListResponse struct {
	Success        bool          `json:"success" example:"true"`
	Questions      []QuestionDTO `json:"questions"`
	TotalQuestions int           `json:"totalQuestions" example:"2"`
}

// DeleteQuestionResponse echoes the removed id.
type DeleteQuestionResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted uint `json:"deleted" example:"10"`
}

// AckResponse is a bare success acknowledgment.
type AckResponse struct {
	Success bool `json:"success" example:"true"`
}

// ErrorResponse is the envelope for every failure.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}
