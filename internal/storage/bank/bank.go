package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/darkphonix1200/QZArena/internal/models"
	"github.com/darkphonix1200/QZArena/pkg/validator"
)

// Bank holds the quiz questions loaded at startup. It is read-only
// after Load, so it is safe to share without locking.
type Bank struct {
	questions []models.Question
}

// Load reads the question file and validates every entry. The bot must
// not start serving with an empty or malformed bank, so any error here
// is fatal for the caller.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file: %w", err)
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse question file: %w", err)
	}

	return New(questions)
}

func New(questions []models.Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}

	for i, q := range questions {
		if err := validator.ValidateStruct(q); err != nil {
			return nil, fmt.Errorf("invalid question %d: %w", i, err)
		}
		if q.Correct >= len(q.Options) {
			return nil, fmt.Errorf("invalid question %d: correct index %d out of range [0, %d)",
				i, q.Correct, len(q.Options))
		}
	}

	return &Bank{questions: questions}, nil
}

func (b *Bank) Length() int {
	return len(b.questions)
}

func (b *Bank) At(index int) models.Question {
	return b.questions[index]
}
