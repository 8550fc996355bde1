package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"trivia-api/internal/domain"
)

// FlexInt accepts a JSON number or a numeric string. The web client sends
// category ids as the string keys of the category mapping.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", data)
	}
	*f = FlexInt(n)
	return nil
}

// CreateQuestionRequest is the body of POST /questions
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   *string  `json:"question" validate:"required"`
	Answer     *string  `json:"answer" validate:"required"`
	Category   *FlexInt `json:"category" validate:"required,gt=0"`
	Difficulty *FlexInt `json:"difficulty" validate:"required,min=1,max=5"`
}

// SearchQuestionsRequest is the body of POST /questions/search
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required,min=1"`
}

// QuizCategory selects the category of a quiz draw. Type "click" means any category.
type QuizCategory struct {
	ID   FlexInt `json:"id" validate:"required_unless=Type click"`
	Type string  `json:"type"`
}

// QuizRequest is the body of POST /quizzes
type QuizRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// ToDraw converts a validated request into a domain draw.
func (r *QuizRequest) ToDraw() domain.QuizDraw {
	prev := make([]int64, len(r.PreviousQuestions))
	for i, id := range r.PreviousQuestions {
		prev[i] = int64(id)
	}
	return domain.QuizDraw{
		PreviousQuestions: prev,
		CategoryID:        int64(r.QuizCategory.ID),
		AnyCategory:       r.QuizCategory.Type == domain.AnyCategoryType,
	}
}

// QuestionResponse is the formatted shape of a question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses never returns nil so an empty list encodes as [].
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}

// CategoriesResponse is returned by GET /categories
type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

// QuestionListResponse is returned by GET /questions
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[string]string  `json:"categories"`
	TotalCategories *int               `json:"total_categories"`
}

// DeleteQuestionResponse is returned by DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// CreateQuestionResponse is returned by POST /questions
type CreateQuestionResponse struct {
	Success    bool   `json:"success"`
	Created    int64  `json:"created"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// SearchQuestionsResponse is returned by POST /questions/search. CurrentCategory is always null.
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *int64             `json:"current_category"`
}

// CategoryQuestionsResponse is returned by /categories/{id}/questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory int64              `json:"current_category"`
}

// QuizResponse is returned by POST /quizzes. Question is null once every candidate was asked.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Success  bool   `json:"success"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   int         `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
