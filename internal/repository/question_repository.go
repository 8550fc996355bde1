package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question, answer, category, difficulty`

// likeEscaper escapes LIKE wildcards so a search term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type questionRepository struct {
	db DBTX
}

// NewQuestionRepository creates a QuestionRepository running on db, which may be a transaction.
func NewQuestionRepository(db DBTX) domain.QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Question, error) {
	var rows []models.Question
	query := r.db.Rebind(`SELECT ` + questionColumns + ` FROM questions ORDER BY id LIMIT ? OFFSET ?`)
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

func (r *questionRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return total, nil
}

func (r *questionRepository) Create(ctx context.Context, q *domain.Question) error {
	if q == nil {
		return fmt.Errorf("cannot save nil question")
	}
	row := toModelQuestion(q)
	query := r.db.Rebind(`INSERT INTO questions (question, answer, category, difficulty)
	VALUES (?, ?, ?, ?) RETURNING id`)

	var id int64
	if err := r.db.GetContext(ctx, &id, query, row.Question, row.Answer, row.Category, row.Difficulty); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	q.ID = id
	return nil
}

func (r *questionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM questions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *questionRepository) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	var rows []models.Question
	query := r.db.Rebind(`SELECT ` + questionColumns + ` FROM questions
	WHERE LOWER(question) LIKE ? ESCAPE '\'
	ORDER BY id`)
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	if err := r.db.SelectContext(ctx, &rows, query, pattern); err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

func (r *questionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	var rows []models.Question
	query := r.db.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE category = ? ORDER BY id`)
	if err := r.db.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	return toDomainQuestions(rows), nil
}

func (r *questionRepository) RandomCandidate(ctx context.Context, draw domain.QuizDraw) (*domain.Question, error) {
	var (
		conds []string
		args  []interface{}
	)
	if !draw.AnyCategory {
		conds = append(conds, "category = ?")
		args = append(args, draw.CategoryID)
	}
	if len(draw.PreviousQuestions) > 0 {
		conds = append(conds, "id NOT IN (?)")
		args = append(args, draw.PreviousQuestions)
	}

	query := `SELECT ` + questionColumns + ` FROM questions`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY RANDOM() LIMIT 1`

	if len(draw.PreviousQuestions) > 0 {
		var err error
		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to expand previous questions: %w", err)
		}
	}

	var row models.Question
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoQuizCandidates
		}
		return nil, fmt.Errorf("failed to draw quiz question: %w", err)
	}
	return toDomainQuestion(&row), nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		CategoryID: m.Category,
		Difficulty: m.Difficulty,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	out := make([]*domain.Question, len(rows))
	for i := range rows {
		out[i] = toDomainQuestion(&rows[i])
	}
	return out
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}
