package repository

import (
	"context"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// SQLStore implements domain.Store on top of sqlx. A store bound to a
// transaction carries tx in exec; otherwise exec is the pool itself.
type SQLStore struct {
	db   *sqlx.DB
	exec DBTX
	inTx bool
}

// NewStore creates a Store bound to the connection pool.
func NewStore(db *sqlx.DB) domain.Store {
	return &SQLStore{db: db, exec: db}
}

func (s *SQLStore) Questions() domain.QuestionRepository {
	return NewQuestionRepository(s.exec)
}

func (s *SQLStore) Categories() domain.CategoryRepository {
	return NewCategoryRepository(s.exec)
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTransaction runs fn inside a transaction and commits when it returns nil.
func (s *SQLStore) WithTransaction(ctx context.Context, fn func(tx domain.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.Get().Error("failed to rollback transaction", zap.Error(rollbackErr))
			}
			panic(p)
		}
	}()

	if err := fn(&SQLStore{db: s.db, exec: tx, inTx: true}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
