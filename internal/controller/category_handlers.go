package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/dto"
)

// GetCategoriesHandler godoc
// @Summary List categories
// @Description All categories as an id to type map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 422 {object} dto.ErrorResponse "Storage failure"
// @Router /categories [get]
func (ctrl *Controller) GetCategoriesHandler(c *gin.Context) {
	categories, err := ctrl.categorySvc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Success: true, Categories: categories})
}

// GetCategoryQuestionsHandler godoc
// @Summary List questions in a category
// @Description Every question filed under the category, unpaginated
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories/{id}/questions [get]
func (ctrl *Controller) GetCategoryQuestionsHandler(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := ctrl.categorySvc.GetCategoryQuestions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  len(result.Questions),
		CurrentCategory: result.CurrentCategory,
	})
}
