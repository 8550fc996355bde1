package validation

import (
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func flexPtr(n int64) *dto.FlexInt {
	f := dto.FlexInt(n)
	return &f
}

func fields(t *testing.T, err error) []string {
	t.Helper()
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	out := make([]string, len(verrs))
	for i, e := range verrs {
		out[i] = e.Field
	}
	return out
}

func TestValidator_CreateQuestionRequest(t *testing.T) {
	v := NewValidator()

	valid := dto.CreateQuestionRequest{
		Question:   strPtr("Q"),
		Answer:     strPtr("A"),
		Category:   flexPtr(1),
		Difficulty: flexPtr(5),
	}
	assert.NoError(t, v.Struct(&valid))

	missing := dto.CreateQuestionRequest{Question: strPtr("Q")}
	assert.ElementsMatch(t, []string{"answer", "category", "difficulty"}, fields(t, v.Struct(&missing)))

	outOfRange := valid
	outOfRange.Difficulty = flexPtr(6)
	outOfRange.Category = flexPtr(0)
	assert.ElementsMatch(t, []string{"category", "difficulty"}, fields(t, v.Struct(&outOfRange)))
}

func TestValidator_SearchQuestionsRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(&dto.SearchQuestionsRequest{SearchTerm: strPtr("title")}))
	assert.Equal(t, []string{"searchTerm"}, fields(t, v.Struct(&dto.SearchQuestionsRequest{})))
	assert.Equal(t, []string{"searchTerm"}, fields(t, v.Struct(&dto.SearchQuestionsRequest{SearchTerm: strPtr("")})))
}

func TestValidator_QuizRequest(t *testing.T) {
	v := NewValidator()

	anyCategory := dto.QuizRequest{
		PreviousQuestions: []dto.FlexInt{},
		QuizCategory:      &dto.QuizCategory{Type: domain.AnyCategoryType},
	}
	assert.NoError(t, v.Struct(&anyCategory))

	noCategoryID := dto.QuizRequest{
		PreviousQuestions: []dto.FlexInt{},
		QuizCategory:      &dto.QuizCategory{Type: "Science"},
	}
	assert.Equal(t, []string{"quiz_category.id"}, fields(t, v.Struct(&noCategoryID)))

	missingKeys := dto.QuizRequest{}
	assert.ElementsMatch(t, []string{"previous_questions", "quiz_category"}, fields(t, v.Struct(&missingKeys)))
}
