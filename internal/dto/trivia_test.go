package dto

import (
	"encoding/json"
	"testing"

	"trivia-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexInt
		wantErr bool
	}{
		{name: "number", input: `3`, want: 3},
		{name: "numeric string", input: `"12"`, want: 12},
		{name: "null leaves zero", input: `null`, want: 0},
		{name: "word", input: `"science"`, wantErr: true},
		{name: "float", input: `1.5`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexInt
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizRequest_ToDraw(t *testing.T) {
	var req QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[4,"9"],"quiz_category":{"id":"2","type":"Art"}}`), &req))
	assert.Equal(t, domain.QuizDraw{PreviousQuestions: []int64{4, 9}, CategoryID: 2}, req.ToDraw())

	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[],"quiz_category":{"id":0,"type":"click"}}`), &req))
	draw := req.ToDraw()
	assert.True(t, draw.AnyCategory)
	assert.NotNil(t, draw.PreviousQuestions)
	assert.Empty(t, draw.PreviousQuestions)
}

func TestNewQuestionResponses_NeverNil(t *testing.T) {
	out := NewQuestionResponses(nil)
	require.NotNil(t, out)

	raw, err := json.Marshal(QuestionListResponse{Success: true, Questions: out})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"questions":[],"total_questions":0,"categories":null,"total_categories":null}`, string(raw))
}
