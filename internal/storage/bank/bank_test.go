package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/darkphonix1200/QZArena/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quiz_data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantLen int
		wantErr bool
	}{
		{
			name: "success",
			content: `[
				{"question": "برنده جام جهانی ۲۰۲۲؟", "options": ["فرانسه", "آرژانتین", "برزیل", "آلمان"], "correct": 1},
				{"question": "بهترین بازیکن تاریخ؟", "options": ["مسی", "رونالدو", "پله", "مارادونا"], "correct": 0}
			]`,
			wantLen: 2,
			wantErr: false,
		},
		{
			name:    "error: empty list",
			content: `[]`,
			wantErr: true,
		},
		{
			name:    "error: malformed json",
			content: `{"question": "؟"`,
			wantErr: true,
		},
		{
			name: "error: missing question text",
			content: `[
				{"question": "", "options": ["آ", "ب", "پ", "ت"], "correct": 0}
			]`,
			wantErr: true,
		},
		{
			name: "error: too few options",
			content: `[
				{"question": "؟", "options": ["تنها گزینه"], "correct": 0}
			]`,
			wantErr: true,
		},
		{
			name: "error: correct index out of range",
			content: `[
				{"question": "؟", "options": ["آ", "ب", "پ", "ت"], "correct": 4}
			]`,
			wantErr: true,
		},
		{
			name: "error: negative correct index",
			content: `[
				{"question": "؟", "options": ["آ", "ب", "پ", "ت"], "correct": -1}
			]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := Load(writeTempFile(t, tt.content))
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, b)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, b.Length())
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	t.Parallel()

	b, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Nil(t, b)
}

func TestBank_At(t *testing.T) {
	t.Parallel()

	questions := []models.Question{
		{Text: "اولین سوال", Options: []string{"آ", "ب"}, Correct: 1},
		{Text: "دومین سوال", Options: []string{"آ", "ب"}, Correct: 0},
	}

	b, err := New(questions)
	require.NoError(t, err)

	require.Equal(t, 2, b.Length())
	assert.Equal(t, "اولین سوال", b.At(0).Text)
	assert.Equal(t, 1, b.At(0).Correct)
	assert.Equal(t, "دومین سوال", b.At(1).Text)
}
