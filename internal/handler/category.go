package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories service.CategoryService, questions service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		questions:  questions,
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as a mapping of id to type
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	mapping, err := h.categories.ListCategories(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(dto.CategoriesResponse{
		Success:    true,
		Categories: mapping.StringKeys(),
	})
}

// GetCategoryQuestions godoc
// @Summary List questions of a category
// @Description Returns every question of the category ordered by id. An unknown category yields an empty list.
// @Tags categories
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{category_id}/questions [get]
// @Router /categories/{category_id}/questions [post]
func (h *CategoryHandler) GetCategoryQuestions(c *fiber.Ctx) error {
	categoryID, ok := middleware.IDFrom(c)
	if !ok {
		return domain.NewBadRequestError("category_id must be an integer", nil)
	}

	questions, err := h.questions.QuestionsByCategory(c.UserContext(), categoryID)
	if err != nil {
		return err
	}

	return c.JSON(dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}
