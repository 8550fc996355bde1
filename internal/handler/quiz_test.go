package handler_test

import (
	"context"
	"errors"
	"testing"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestQuizHandler_NextQuestion(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockQuizService)
		expectedStatus int
		expectQuestion bool
	}{
		{
			name: "Specific category",
			body: `{"previous_questions":[1,"2"],"quiz_category":{"id":"3","type":"Geography"}}`,
			setupMock: func(m *MockQuizService) {
				m.NextQuestionFunc = func(ctx context.Context, draw domain.QuizDraw) (*domain.Question, error) {
					assert.Equal(t, []int64{1, 2}, draw.PreviousQuestions)
					assert.Equal(t, int64(3), draw.CategoryID)
					assert.False(t, draw.AnyCategory)
					return &domain.Question{ID: 13, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: 3, Difficulty: 2}, nil
				}
			},
			expectedStatus: fiber.StatusOK,
			expectQuestion: true,
		},
		{
			name: "Any category",
			body: `{"previous_questions":[],"quiz_category":{"id":0,"type":"click"}}`,
			setupMock: func(m *MockQuizService) {
				m.NextQuestionFunc = func(ctx context.Context, draw domain.QuizDraw) (*domain.Question, error) {
					assert.True(t, draw.AnyCategory)
					assert.Empty(t, draw.PreviousQuestions)
					return &domain.Question{ID: 1, CategoryID: 5}, nil
				}
			},
			expectedStatus: fiber.StatusOK,
			expectQuestion: true,
		},
		{
			name: "No candidates left",
			body: `{"previous_questions":[1,2,3],"quiz_category":{"id":1,"type":"Science"}}`,
			setupMock: func(m *MockQuizService) {
				m.NextQuestionFunc = func(ctx context.Context, draw domain.QuizDraw) (*domain.Question, error) {
					return nil, nil
				}
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "Malformed body",
			body:           `{"previous_questions":`,
			setupMock:      func(m *MockQuizService) {},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "Missing quiz_category",
			body:           `{"previous_questions":[]}`,
			setupMock:      func(m *MockQuizService) {},
			expectedStatus: fiber.StatusUnprocessableEntity,
		},
		{
			name:           "Missing previous_questions",
			body:           `{"quiz_category":{"id":1,"type":"Science"}}`,
			setupMock:      func(m *MockQuizService) {},
			expectedStatus: fiber.StatusUnprocessableEntity,
		},
		{
			name: "Store failure",
			body: `{"previous_questions":[],"quiz_category":{"id":1,"type":"Science"}}`,
			setupMock: func(m *MockQuizService) {
				m.NextQuestionFunc = func(ctx context.Context, draw domain.QuizDraw) (*domain.Question, error) {
					return nil, domain.NewInternalError("Failed to draw quiz question", errors.New("db down"))
				}
			},
			expectedStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quizSvc := &MockQuizService{}
			tt.setupMock(quizSvc)
			app := setupApp(&MockCategoryService{}, &MockQuestionService{}, quizSvc)

			resp := doRequest(t, app, fiber.MethodPost, "/quizzes", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeJSON(t, resp)
			if tt.expectedStatus != fiber.StatusOK {
				assert.Equal(t, false, body["success"])
				return
			}
			assert.Equal(t, true, body["success"])
			assert.Contains(t, body, "question")
			if tt.expectQuestion {
				assert.NotNil(t, body["question"])
			} else {
				assert.Nil(t, body["question"])
			}
		})
	}
}
