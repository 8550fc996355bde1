package domain

import (
	"context"
	"errors"
)

// ErrNoQuizCandidates is returned when every eligible question has already been asked.
var ErrNoQuizCandidates = errors.New("no quiz candidates left")

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// List returns up to limit questions ordered by id, starting at offset.
	List(ctx context.Context, limit, offset int) ([]*Question, error)

	Count(ctx context.Context) (int, error)

	// Create inserts q and sets q.ID.
	Create(ctx context.Context, q *Question) error

	// Delete returns ErrQuestionNotFound when no row was removed.
	Delete(ctx context.Context, id int64) error

	// Search matches term case-insensitively as a substring of the question text.
	Search(ctx context.Context, term string) ([]*Question, error)

	ListByCategory(ctx context.Context, categoryID int64) ([]*Question, error)

	// RandomCandidate picks one eligible question uniformly at random,
	// or returns ErrNoQuizCandidates.
	RandomCandidate(ctx context.Context, draw QuizDraw) (*Question, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// List returns every category ordered by type.
	List(ctx context.Context) ([]*Category, error)

	Exists(ctx context.Context, id int64) (bool, error)

	// GetByType returns ErrCategoryNotFound when no category carries the label.
	GetByType(ctx context.Context, categoryType string) (*Category, error)

	// Create inserts c and sets c.ID. Only the seed command creates categories.
	Create(ctx context.Context, c *Category) error
}

// Store hands out repositories bound to one executor, either the connection
// pool or a single transaction.
type Store interface {
	Questions() QuestionRepository
	Categories() CategoryRepository

	// WithTransaction runs fn with a Store bound to a new transaction, committing
	// when fn returns nil. Called on a transaction-bound Store it reuses the transaction.
	WithTransaction(ctx context.Context, fn func(tx Store) error) error

	Ping(ctx context.Context) error
}
