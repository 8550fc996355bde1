package service

import (
	"context"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines the interface for question-related operations
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*domain.QuestionPage, error)
	CreateQuestion(ctx context.Context, q *domain.Question) error
	DeleteQuestion(ctx context.Context, id int64) error
	SearchQuestions(ctx context.Context, term string) ([]*domain.Question, error)
	QuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error)
}

type questionService struct {
	store      domain.Store
	categories CategoryService
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(store domain.Store, categories CategoryService) QuestionService {
	return &questionService{
		store:      store,
		categories: categories,
	}
}

// ListQuestions returns one page of questions together with the total count and
// the category mapping. An empty page is NotFound.
func (s *questionService) ListQuestions(ctx context.Context, page int) (result *domain.QuestionPage, err error) {
	ctx, span := startSpan(ctx, "QuestionService.ListQuestions", attribute.Int("page", page))
	defer func() { endSpan(span, err) }()

	if page < 1 {
		return nil, domain.NewBadRequestError("page must be a positive integer", nil)
	}
	if page > domain.MaxPage {
		return nil, domain.NewNotFoundError("no questions on this page", domain.ErrNotFound).WithContext("page", page)
	}

	var (
		questions  []*domain.Question
		total      int
		categories domain.CategoryMapping
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.store.Questions().List(gctx, domain.QuestionsPerPage, domain.PageOffset(page))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.Questions().Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.Mapping(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("no questions on this page", domain.ErrNotFound).WithContext("page", page)
	}

	return &domain.QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}, nil
}

// CreateQuestion validates q and inserts it after checking that its category exists.
func (s *questionService) CreateQuestion(ctx context.Context, q *domain.Question) (err error) {
	ctx, span := startSpan(ctx, "QuestionService.CreateQuestion", attribute.Int64("category", q.CategoryID))
	defer func() { endSpan(span, err) }()

	if errs := q.Validate(); len(errs) > 0 {
		return errs
	}

	err = s.store.WithTransaction(ctx, func(tx domain.Store) error {
		exists, err := tx.Categories().Exists(ctx, q.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewUnprocessableError("category does not exist", domain.ErrCategoryNotFound).
				WithContext("category", q.CategoryID)
		}
		return tx.Questions().Create(ctx, q)
	})
	if err != nil {
		if domain.IsCode(err, domain.CodeUnprocessable) {
			return err
		}
		return domain.NewInternalError("Failed to create question", err)
	}

	logger.Get().Info("Question created", zap.Int64("id", q.ID), zap.Int64("category", q.CategoryID))
	return nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "QuestionService.DeleteQuestion", attribute.Int64("id", id))
	defer func() { endSpan(span, err) }()

	if err := s.store.Questions().Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return domain.NewNotFoundError("question not found", err).WithContext("id", id)
		}
		return domain.NewInternalError("Failed to delete question", err)
	}

	logger.Get().Info("Question deleted", zap.Int64("id", id))
	return nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string) (questions []*domain.Question, err error) {
	ctx, span := startSpan(ctx, "QuestionService.SearchQuestions", attribute.String("term", term))
	defer func() { endSpan(span, err) }()

	if term == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("searchTerm")}
	}

	questions, err = s.store.Questions().Search(ctx, term)
	if err != nil {
		return nil, domain.NewInternalError("Failed to search questions", err)
	}
	return questions, nil
}

// QuestionsByCategory does not check that the category exists; an unknown id yields an empty list.
func (s *questionService) QuestionsByCategory(ctx context.Context, categoryID int64) (questions []*domain.Question, err error) {
	ctx, span := startSpan(ctx, "QuestionService.QuestionsByCategory", attribute.Int64("category", categoryID))
	defer func() { endSpan(span, err) }()

	questions, err = s.store.Questions().ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions by category", err)
	}
	return questions, nil
}
