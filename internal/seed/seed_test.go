package seed

import (
	"context"
	"strings"
	"testing"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
categories:
  - type: Science
    questions:
      - question: What is the heaviest organ in the human body?
        answer: The Liver
        difficulty: 4
      - question: Who discovered penicillin?
        answer: Alexander Fleming
        difficulty: 3
  - type: Art
    questions:
      - question: Which Dutch graphic artist was initially a "Dutch Master"?
        answer: Escher
        difficulty: 1
`

func newTestStore(t *testing.T) domain.Store {
	t.Helper()
	db, err := database.NewSQLXDB(config.DBConfig{Driver: database.DriverSQLite}, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return repository.NewStore(db)
}

func TestDecode(t *testing.T) {
	file, err := Decode(strings.NewReader(sampleSeed))
	require.NoError(t, err)
	require.Len(t, file.Categories, 2)
	assert.Equal(t, "Science", file.Categories[0].Type)
	assert.Equal(t, 4, file.Categories[0].Questions[0].Difficulty)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("categories:\n  - name: Science\n"))
	assert.Error(t, err)
}

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	file, err := Decode(strings.NewReader(sampleSeed))
	require.NoError(t, err)

	res, err := Apply(ctx, store, file)
	require.NoError(t, err)
	assert.Equal(t, Result{CategoriesCreated: 2, QuestionsCreated: 3}, res)

	res, err = Apply(ctx, store, file)
	require.NoError(t, err)
	assert.Equal(t, Result{CategoriesSkipped: 2}, res)

	total, err := store.Questions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestApply_InvalidQuestionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	file := &File{Categories: []SeedCategory{
		{Type: "History", Questions: []SeedQuestion{{Question: "Q", Answer: "A", Difficulty: 9}}},
	}}

	_, err := Apply(ctx, store, file)
	require.Error(t, err)

	categories, err := store.Categories().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
