package service

import (
	"context"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// QuizService draws quiz questions
type QuizService interface {
	// NextQuestion returns a random question not yet asked, or nil once the candidate set is empty.
	NextQuestion(ctx context.Context, draw domain.QuizDraw) (*domain.Question, error)
}

type quizService struct {
	store domain.Store
}

// NewQuizService creates a new instance of quizService
func NewQuizService(store domain.Store) QuizService {
	return &quizService{store: store}
}

func (s *quizService) NextQuestion(ctx context.Context, draw domain.QuizDraw) (question *domain.Question, err error) {
	ctx, span := startSpan(ctx, "QuizService.NextQuestion",
		attribute.Bool("any_category", draw.AnyCategory),
		attribute.Int64("category", draw.CategoryID),
		attribute.Int("previous", len(draw.PreviousQuestions)),
	)
	defer func() { endSpan(span, err) }()

	question, err = s.store.Questions().RandomCandidate(ctx, draw)
	if err != nil {
		if errors.Is(err, domain.ErrNoQuizCandidates) {
			logger.Get().Debug("QuizService: candidate set exhausted",
				zap.Bool("any_category", draw.AnyCategory),
				zap.Int64("category", draw.CategoryID),
				zap.Int("previous", len(draw.PreviousQuestions)))
			return nil, nil
		}
		return nil, domain.NewInternalError("Failed to draw quiz question", err)
	}
	return question, nil
}
