package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/apperr"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetQuestionsHandler godoc
// @Summary List questions, 10 per page
// @Description Page of questions with the total count and the category map. A page past the end is 404.
// @Tags questions
// @Produce json
// @Param page query int false "1-indexed page" default(1)
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 400 {object} dto.ErrorResponse "Non-numeric page"
// @Failure 404 {object} dto.ErrorResponse "Page out of range"
// @Router /questions [get]
func (ctrl *Controller) GetQuestionsHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		respondError(c, apperr.Wrap(err, apperr.BadRequest, "parse page"))
		return
	}

	result, err := ctrl.questionSvc.ListQuestions(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuestionPageResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      result.Categories,
		CurrentCategory: result.Categories,
	})
}

// CreateQuestionHandler godoc
// @Summary Create a question
// @Description All four fields are required. The new id is not returned.
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 200 {object} dto.AckResponse
// @Failure 422 {object} dto.ErrorResponse "Missing or invalid field, or insert failure"
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Wrap(err, apperr.Unprocessable, "bind CreateQuestionRequest"))
		return
	}

	if err := ctrl.questionSvc.CreateQuestion(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AckResponse{Success: true})
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Description Permanently removes the question and echoes its id
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Delete failed"
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.questionSvc.DeleteQuestion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{Success: true, Deleted: id})
}

// SearchQuestionsHandler godoc
// @Summary Search questions
// @Description Case-insensitive substring match on the question text. Failures yield an empty result.
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchQuestionsRequest true "Search term"
// @Success 200 {object} dto.QuestionListResponse
// @Router /questions/search_query [post]
func (ctrl *Controller) SearchQuestionsHandler(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SearchTerm == nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Msg("Invalid search request, returning empty result")
		c.JSON(http.StatusOK, dto.QuestionListResponse{Success: true, Questions: []dto.QuestionDTO{}})
		return
	}

	questions := ctrl.questionSvc.SearchQuestions(c.Request.Context(), *req.SearchTerm)
	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: len(questions),
	})
}
