package controller

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/lshigami/trivia-api/internal/apperr"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	categorySvc service.CategoryService
	questionSvc service.QuestionService
	quizSvc     service.QuizService
}

func NewController(cSvc service.CategoryService, qSvc service.QuestionService, quizSvc service.QuizService) *Controller {
	registerValidators()
	return &Controller{
		categorySvc: cSvc,
		questionSvc: qSvc,
		quizSvc:     quizSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	categories := router.Group("/categories")
	{
		categories.GET("", ctrl.GetCategoriesHandler)
		categories.GET("/:id/questions", ctrl.GetCategoryQuestionsHandler)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", ctrl.GetQuestionsHandler)
		questions.POST("", ctrl.CreateQuestionHandler)
		questions.DELETE("/:id", ctrl.DeleteQuestionHandler)
		questions.POST("/search_query", ctrl.SearchQuestionsHandler)
	}

	router.POST("/quizzes", ctrl.NextQuizQuestionHandler)

	router.HandleMethodNotAllowed = true
	router.NoRoute(NotFoundHandler)
	router.NoMethod(NotFoundHandler)
}

// NotFoundHandler answers unknown routes with the 404 envelope.
func NotFoundHandler(c *gin.Context) {
	respondError(c, apperr.New(apperr.NotFound, "route "+c.Request.Method+" "+c.Request.URL.Path))
}

// Recovery turns a handler panic into the 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Ctx(c.Request.Context()).Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		respondError(c, apperr.New(apperr.Internal, "panic"))
	})
}

// respondError logs the cause and writes the fixed envelope for its kind.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := kind.HTTPStatus()

	event := log.Ctx(c.Request.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = log.Ctx(c.Request.Context()).Error()
	}
	event.Err(err).Str("kind", kind.String()).Int("status", status).Str("path", c.Request.URL.Path).Msg("Request failed")

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: kind.Message(),
	})
}

// parseID reads a numeric path parameter. A non-numeric id does not name a resource.
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.Wrap(err, apperr.NotFound, "parse "+name)
	}
	return uint(id), nil
}

var validatorsOnce sync.Once

func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			log.Error().Err(err).Msg("Failed to register notblank validator")
		}
	})
}
