package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepository_List(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	rows := sqlmock.NewRows(questionCols).
		AddRow(11, "Q11", "A11", 1, 2).
		AddRow(12, "Q12", "A12", 3, 4)
	query := `SELECT id, question, answer, category, difficulty FROM questions ORDER BY id LIMIT ? OFFSET ?`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(10, 10).WillReturnRows(rows)

	result, err := repo.List(context.Background(), 10, 10)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, &domain.Question{ID: 11, Question: "Q11", Answer: "A11", CategoryID: 1, Difficulty: 2}, result[0])
	assert.Equal(t, int64(3), result[1].CategoryID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_List_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions ORDER BY id LIMIT`)).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), 10, 0)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Count(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM questions`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(19))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 19, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	q := domain.NewQuestion("Which planet is closest to the sun?", "Mercury", 1, 2)
	query := `INSERT INTO questions (question, answer, category, difficulty)
	VALUES (?, ?, ?, ?) RETURNING id`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(q.Question, q.Answer, int64(1), 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))

	require.NoError(t, repo.Create(context.Background(), q))
	assert.Equal(t, int64(31), q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Create_Nil(t *testing.T) {
	db, _ := setupTestDB(t)
	assert.Error(t, NewQuestionRepository(db).Create(context.Background(), nil))
}

func TestQuestionRepository_Delete(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM questions WHERE id = ?`)

	t.Run("Deleted", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionRepository(db)
		mock.ExpectExec(query).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionRepository(db)
		mock.ExpectExec(query).WithArgs(int64(4000)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 4000), domain.ErrQuestionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuestionRepository_Search(t *testing.T) {
	tests := []struct {
		name        string
		term        string
		wantPattern string
	}{
		{name: "Lowercases the term", term: "TiTle", wantPattern: "%title%"},
		{name: "Escapes wildcards", term: "100%_sure", wantPattern: `%100\%\_sure%`},
		{name: "Escapes backslash", term: `a\b`, wantPattern: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewQuestionRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`WHERE LOWER(question) LIKE ? ESCAPE '\'`)).
				WithArgs(tt.wantPattern).
				WillReturnRows(sqlmock.NewRows(questionCols).AddRow(2, "Whose autobiography has a title?", "Maya Angelou", 4, 2))

			result, err := repo.Search(context.Background(), tt.term)
			require.NoError(t, err)
			assert.Len(t, result, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionRepository_ListByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE category = ? ORDER BY id`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(42)).WillReturnRows(sqlmock.NewRows(questionCols))

	result, err := repo.ListByCategory(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_RandomCandidate(t *testing.T) {
	tests := []struct {
		name      string
		draw      domain.QuizDraw
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name:      "Any category, nothing asked",
			draw:      domain.QuizDraw{AnyCategory: true},
			wantQuery: `FROM questions ORDER BY RANDOM() LIMIT 1`,
		},
		{
			name:      "Category only",
			draw:      domain.QuizDraw{CategoryID: 3},
			wantQuery: `FROM questions WHERE category = ? ORDER BY RANDOM() LIMIT 1`,
			wantArgs:  []interface{}{int64(3)},
		},
		{
			name:      "Category and previous questions",
			draw:      domain.QuizDraw{CategoryID: 3, PreviousQuestions: []int64{7, 9}},
			wantQuery: `FROM questions WHERE category = ? AND id NOT IN (?, ?) ORDER BY RANDOM() LIMIT 1`,
			wantArgs:  []interface{}{int64(3), int64(7), int64(9)},
		},
		{
			name:      "Any category with previous questions",
			draw:      domain.QuizDraw{AnyCategory: true, CategoryID: 3, PreviousQuestions: []int64{1}},
			wantQuery: `FROM questions WHERE id NOT IN (?) ORDER BY RANDOM() LIMIT 1`,
			wantArgs:  []interface{}{int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewQuestionRepository(db)

			args := make([]driver.Value, 0, len(tt.wantArgs))
			for _, a := range tt.wantArgs {
				args = append(args, a)
			}
			expect := mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery) + "$")
			if len(args) > 0 {
				expect = expect.WithArgs(args...)
			}
			expect.WillReturnRows(sqlmock.NewRows(questionCols).AddRow(8, "Q", "A", 3, 1))

			q, err := repo.RandomCandidate(context.Background(), tt.draw)
			require.NoError(t, err)
			assert.Equal(t, int64(8), q.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionRepository_RandomCandidate_Exhausted(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY RANDOM() LIMIT 1`)).WillReturnError(sql.ErrNoRows)

	_, err := repo.RandomCandidate(context.Background(), domain.QuizDraw{AnyCategory: true, PreviousQuestions: []int64{1, 2}})
	assert.ErrorIs(t, err, domain.ErrNoQuizCandidates)
	assert.NoError(t, mock.ExpectationsWereMet())
}
