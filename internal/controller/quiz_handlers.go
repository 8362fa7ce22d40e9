package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/apperr"
	"github.com/lshigami/trivia-api/internal/dto"
)

// NextQuizQuestionHandler godoc
// @Summary Next quiz question
// @Description Random question from the category (0 for all) that is not in previous_questions. question is null when none is left.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizRequest true "Seen question ids and quiz category"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed quiz request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func (ctrl *Controller) NextQuizQuestionHandler(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Wrap(err, apperr.BadRequest, "bind QuizRequest"))
		return
	}
	categoryID, previous, err := req.Normalize()
	if err != nil {
		respondError(c, apperr.Wrap(err, apperr.BadRequest, "normalize QuizRequest"))
		return
	}

	question, err := ctrl.quizSvc.NextQuestion(c.Request.Context(), categoryID, previous)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuizResponse{Success: true, Question: question})
}
