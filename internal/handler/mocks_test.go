package handler_test

import (
	"context"

	"trivia-api/internal/domain"
)

// --- Manual Mocks ---

// MockCategoryService
type MockCategoryService struct {
	ListCategoriesFunc func(ctx context.Context) (domain.CategoryMapping, error)
	MappingFunc        func(ctx context.Context) (domain.CategoryMapping, error)
}

func (m *MockCategoryService) ListCategories(ctx context.Context) (domain.CategoryMapping, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	panic("MockCategoryService.ListCategoriesFunc not implemented")
}
func (m *MockCategoryService) Mapping(ctx context.Context) (domain.CategoryMapping, error) {
	if m.MappingFunc != nil {
		return m.MappingFunc(ctx)
	}
	panic("MockCategoryService.MappingFunc not implemented")
}

// MockQuestionService
type MockQuestionService struct {
	ListQuestionsFunc       func(ctx context.Context, page int) (*domain.QuestionPage, error)
	CreateQuestionFunc      func(ctx context.Context, q *domain.Question) error
	DeleteQuestionFunc      func(ctx context.Context, id int64) error
	SearchQuestionsFunc     func(ctx context.Context, term string) ([]*domain.Question, error)
	QuestionsByCategoryFunc func(ctx context.Context, categoryID int64) ([]*domain.Question, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, page int) (*domain.QuestionPage, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) CreateQuestion(ctx context.Context, q *domain.Question) error {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, q)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) error {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}
func (m *MockQuestionService) SearchQuestions(ctx context.Context, term string) ([]*domain.Question, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, term)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}
func (m *MockQuestionService) QuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	if m.QuestionsByCategoryFunc != nil {
		return m.QuestionsByCategoryFunc(ctx, categoryID)
	}
	panic("MockQuestionService.QuestionsByCategoryFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	NextQuestionFunc func(ctx context.Context, draw domain.QuizDraw) (*domain.Question, error)
}

func (m *MockQuizService) NextQuestion(ctx context.Context, draw domain.QuizDraw) (*domain.Question, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, draw)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}

// MockStore only implements Ping; the health handler needs nothing else.
type MockStore struct {
	domain.Store
	PingFunc func(ctx context.Context) error
}

func (m *MockStore) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

// MockCache only implements Ping.
type MockCache struct {
	domain.Cache
	PingFunc func(ctx context.Context) error
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}
