package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedQuestion is a question entry of the seed file.
type SeedQuestion struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Difficulty int    `yaml:"difficulty"`
}

// SeedCategory is a category together with the questions seeded into it.
type SeedCategory struct {
	Type      string         `yaml:"type"`
	Questions []SeedQuestion `yaml:"questions"`
}

// File is the root of the seed file.
type File struct {
	Categories []SeedCategory `yaml:"categories"`
}

// Result counts what Apply inserted.
type Result struct {
	CategoriesCreated int
	CategoriesSkipped int
	QuestionsCreated  int
}

// LoadFile reads a YAML seed file from path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a YAML seed document.
func Decode(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return &file, nil
}

// Apply inserts the seed data in a single transaction. A category whose type
// already exists is skipped together with its questions, so running the seed
// twice changes nothing.
func Apply(ctx context.Context, store domain.Store, file *File) (Result, error) {
	log := logger.Get()
	var res Result

	err := store.WithTransaction(ctx, func(tx domain.Store) error {
		for _, sc := range file.Categories {
			_, err := tx.Categories().GetByType(ctx, sc.Type)
			if err == nil {
				log.Info("Category exists, skipping", zap.String("type", sc.Type))
				res.CategoriesSkipped++
				continue
			}
			if !errors.Is(err, domain.ErrCategoryNotFound) {
				return fmt.Errorf("error checking category %s: %w", sc.Type, err)
			}

			category := &domain.Category{Type: sc.Type}
			if err := tx.Categories().Create(ctx, category); err != nil {
				return fmt.Errorf("failed to save category %s: %w", sc.Type, err)
			}
			res.CategoriesCreated++
			log.Info("Created category", zap.Int64("id", category.ID), zap.String("type", category.Type))

			for i, sq := range sc.Questions {
				q := domain.NewQuestion(sq.Question, sq.Answer, category.ID, sq.Difficulty)
				if errs := q.Validate(); len(errs) > 0 {
					return fmt.Errorf("invalid question %d of category %s: %w", i+1, sc.Type, errs)
				}
				if err := tx.Questions().Create(ctx, q); err != nil {
					return fmt.Errorf("failed to save question %d of category %s: %w", i+1, sc.Type, err)
				}
				res.QuestionsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
