package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func setupApp(categorySvc *MockCategoryService, questionSvc *MockQuestionService, quizSvc *MockQuizService) *fiber.App {
	v := validation.NewValidator()
	categoryHandler := handler.NewCategoryHandler(categorySvc, questionSvc)
	questionHandler := handler.NewQuestionHandler(questionSvc, v)
	quizHandler := handler.NewQuizHandler(quizSvc, v)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/categories", categoryHandler.GetCategories)
	app.Get("/categories/:category_id/questions", middleware.ValidateIDParam("category_id"), categoryHandler.GetCategoryQuestions)
	app.Post("/categories/:category_id/questions", middleware.ValidateIDParam("category_id"), categoryHandler.GetCategoryQuestions)
	app.Get("/questions", middleware.ValidatePage(), questionHandler.ListQuestions)
	app.Post("/questions", questionHandler.CreateQuestion)
	app.Post("/questions/search", questionHandler.SearchQuestions)
	app.Delete("/questions/:id", middleware.ValidateIDParam("id"), questionHandler.DeleteQuestion)
	app.Post("/quizzes", quizHandler.NextQuestion)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
