package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// NextQuestion godoc
// @Summary Draw a quiz question
// @Description Returns a random question not in previous_questions. quiz_category.type "click" draws from every category. question is null once no candidate remains.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("quiz request body is malformed", domain.ErrQuizBodyMalformed).
			WithContext("reason", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		logger.Get().Debug("Quiz request rejected", zap.Error(err))
		return domain.NewUnprocessableError("previous_questions and quiz_category are required", domain.ErrQuizMissingKey).
			WithContext("fields", err)
	}

	question, err := h.service.NextQuestion(c.UserContext(), req.ToDraw())
	if err != nil {
		return err
	}

	resp := dto.QuizResponse{Success: true}
	if question != nil {
		qr := dto.NewQuestionResponse(question)
		resp.Question = &qr
	}
	return c.JSON(resp)
}
