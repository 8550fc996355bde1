package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	// QuestionsPerPage is the fixed page size of the question listing.
	QuestionsPerPage = 10

	// MaxPage is the largest page whose offset fits in an int. No store holds that many rows.
	MaxPage = math.MaxInt / QuestionsPerPage

	// AnyCategoryType is the quiz_category.type value that draws from every category.
	AnyCategoryType = "click"

	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is a single trivia question.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	CategoryID int64
	Difficulty int
}

// NewQuestion creates a Question that has not been persisted yet.
func NewQuestion(question, answer string, categoryID int64, difficulty int) *Question {
	return &Question{
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		CategoryID: categoryID,
		Difficulty: difficulty,
	}
}

// Validate checks the fields a new question must carry.
func (q *Question) Validate() ValidationErrors {
	var errs ValidationErrors
	if q.Question == "" {
		errs = append(errs, NewMissingFieldError("question"))
	}
	if q.Answer == "" {
		errs = append(errs, NewMissingFieldError("answer"))
	}
	if q.CategoryID <= 0 {
		errs = append(errs, NewInvalidFormatError("category", q.CategoryID))
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		errs = append(errs, NewOutOfRangeError("difficulty", q.Difficulty, MinDifficulty, MaxDifficulty))
	}
	return errs
}

// Category is a question category. Type is its display label.
type Category struct {
	ID   int64
	Type string
}

// CategoryMapping maps a category id to its display label.
type CategoryMapping map[int64]string

// NewCategoryMapping builds a mapping from a category list.
func NewCategoryMapping(categories []*Category) CategoryMapping {
	m := make(CategoryMapping, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// StringKeys returns the mapping keyed by the decimal id, the shape used on the wire and in the cache.
func (m CategoryMapping) StringKeys() map[string]string {
	out := make(map[string]string, len(m))
	for id, label := range m {
		out[strconv.FormatInt(id, 10)] = label
	}
	return out
}

// QuestionPage is one page of the id-ordered question list.
type QuestionPage struct {
	Questions  []*Question
	Total      int
	Categories CategoryMapping
}

// QuizDraw is the input of a quiz draw. CategoryID is ignored when AnyCategory is set.
type QuizDraw struct {
	PreviousQuestions []int64
	CategoryID        int64
	AnyCategory       bool
}

// PageOffset returns the row offset of a 1-indexed page.
func PageOffset(page int) int {
	return (page - 1) * QuestionsPerPage
}
