package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questions service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(questions service.QuestionService, validator *validation.Validator) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		validator: validator,
	}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of ten questions with the total count and the category mapping
// @Tags questions
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	page, err := h.questions.ListQuestions(c.UserContext(), middleware.PageFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(dto.QuestionListResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(page.Questions),
		TotalQuestions: page.Total,
		Categories:     page.Categories.StringKeys(),
	})
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Adds a question to an existing category
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("request body is not valid JSON", err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	q := domain.NewQuestion(*req.Question, *req.Answer, int64(*req.Category), int(*req.Difficulty))
	if err := h.questions.CreateQuestion(c.UserContext(), q); err != nil {
		return err
	}

	return c.JSON(dto.CreateQuestionResponse{
		Success:    true,
		Created:    q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, ok := middleware.IDFrom(c)
	if !ok {
		return domain.NewBadRequestError("id must be an integer", nil)
	}

	if err := h.questions.DeleteQuestion(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(dto.DeleteQuestionResponse{
		Success: true,
		Deleted: id,
	})
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.SearchQuestionsRequest true "Search term"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("request body is not valid JSON", err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	questions, err := h.questions.SearchQuestions(c.UserContext(), *req.SearchTerm)
	if err != nil {
		return err
	}

	return c.JSON(dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(questions),
		TotalQuestions: len(questions),
	})
}
