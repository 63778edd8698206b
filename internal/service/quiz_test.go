package service

import (
	"testing"

	"github.com/darkphonix1200/QZArena/internal/models"
	"github.com/darkphonix1200/QZArena/internal/repository"
	"github.com/darkphonix1200/QZArena/internal/storage/bank"
	"github.com/darkphonix1200/QZArena/internal/storage/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testQuestions(n int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, models.Question{
			Text:    "سوال",
			Options: []string{"آ", "ب", "پ", "ت"},
			Correct: i % 4,
		})
	}
	return questions
}

func newQuizServiceTest(t *testing.T, questions []models.Question) (*QuizS, *repository.Ledger) {
	t.Helper()

	b, err := bank.New(questions)
	require.NoError(t, err)

	ledger := repository.NewLedger()
	return NewQuizService(b, cache.NewCache(), ledger, zap.NewNop()), ledger
}

func TestQuizS_StartQuiz(t *testing.T) {
	t.Parallel()

	q, _ := newQuizServiceTest(t, testQuestions(3))

	card, discarded := q.StartQuiz(1)
	assert.False(t, discarded)
	assert.Equal(t, 1, card.Number)
	assert.Equal(t, 3, card.Total)
	assert.Equal(t, "سوال", card.Question.Text)

	// restart mid-quiz discards the prior attempt
	_, err := q.SubmitAnswer(1, 0)
	require.NoError(t, err)

	card, discarded = q.StartQuiz(1)
	assert.True(t, discarded)
	assert.Equal(t, 1, card.Number)

	current, err := q.CurrentQuestion(1)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Number)
}

func TestQuizS_SubmitAnswer(t *testing.T) {
	t.Parallel()

	questions := []models.Question{
		{Text: "یک", Options: []string{"آ", "ب"}, Correct: 1},
		{Text: "دو", Options: []string{"آ", "ب"}, Correct: 0},
	}

	tests := []struct {
		name      string
		answers   []int
		wantScore int
		wantTier  models.Tier
	}{
		{
			name:      "all correct",
			answers:   []int{1, 0},
			wantScore: 20,
			wantTier:  models.TierChampion,
		},
		{
			name:      "half correct hits average boundary",
			answers:   []int{0, 0},
			wantScore: 10,
			wantTier:  models.TierAverage,
		},
		{
			name:      "all wrong",
			answers:   []int{0, 1},
			wantScore: 0,
			wantTier:  models.TierNovice,
		},
		{
			name:      "score independent of answer order",
			answers:   []int{1, 1},
			wantScore: 10,
			wantTier:  models.TierAverage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, _ := newQuizServiceTest(t, questions)
			q.StartQuiz(1)

			for i, answer := range tt.answers {
				result, err := q.SubmitAnswer(1, answer)
				require.NoError(t, err)

				wantCorrect := answer == questions[i].Correct
				assert.Equal(t, wantCorrect, result.Correct)
				if wantCorrect {
					assert.Equal(t, 10, result.Points)
					assert.Empty(t, result.CorrectAnswer)
				} else {
					assert.Zero(t, result.Points)
					assert.Equal(t, questions[i].Options[questions[i].Correct], result.CorrectAnswer)
				}
				assert.Equal(t, i == len(tt.answers)-1, result.Done)
			}

			require.True(t, q.IsComplete(1))

			result, err := q.Finalize(1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, 20, result.Total)
			assert.Equal(t, tt.wantScore/10, result.RightCount)
			assert.Equal(t, 2-tt.wantScore/10, result.WrongCount)
			assert.Equal(t, tt.wantTier, result.Tier)
		})
	}
}

func TestQuizS_SubmitAnswer_invalidState(t *testing.T) {
	t.Parallel()

	q, _ := newQuizServiceTest(t, testQuestions(1))

	// no session yet
	_, err := q.SubmitAnswer(1, 0)
	assert.ErrorIs(t, err, ErrNoSession)

	q.StartQuiz(1)

	// option out of range leaves the session untouched
	_, err = q.SubmitAnswer(1, 4)
	assert.ErrorIs(t, err, ErrOptionOutOfRange)
	_, err = q.SubmitAnswer(1, -1)
	assert.ErrorIs(t, err, ErrOptionOutOfRange)

	card, err := q.CurrentQuestion(1)
	require.NoError(t, err)
	assert.Equal(t, 1, card.Number)

	// answering past the last question mutates nothing
	_, err = q.SubmitAnswer(1, 0)
	require.NoError(t, err)
	_, err = q.SubmitAnswer(1, 0)
	assert.ErrorIs(t, err, ErrQuizComplete)

	result, err := q.Finalize(1)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Score)
}

func TestQuizS_CurrentQuestion(t *testing.T) {
	t.Parallel()

	q, _ := newQuizServiceTest(t, testQuestions(2))

	_, err := q.CurrentQuestion(1)
	assert.ErrorIs(t, err, ErrNoSession)

	q.StartQuiz(1)

	card, err := q.CurrentQuestion(1)
	require.NoError(t, err)
	assert.Equal(t, 1, card.Number)
	assert.Equal(t, 2, card.Total)

	_, err = q.SubmitAnswer(1, 0)
	require.NoError(t, err)

	card, err = q.CurrentQuestion(1)
	require.NoError(t, err)
	assert.Equal(t, 2, card.Number)

	_, err = q.SubmitAnswer(1, 0)
	require.NoError(t, err)

	_, err = q.CurrentQuestion(1)
	assert.ErrorIs(t, err, ErrQuizComplete)
}

func TestQuizS_Finalize(t *testing.T) {
	t.Parallel()

	q, ledger := newQuizServiceTest(t, testQuestions(2))

	_, err := q.Finalize(1)
	assert.ErrorIs(t, err, ErrNoSession)

	q.StartQuiz(1)
	_, err = q.Finalize(1)
	assert.ErrorIs(t, err, ErrQuizNotComplete)

	// first answer correct, second wrong
	_, err = q.SubmitAnswer(1, 0)
	require.NoError(t, err)
	_, err = q.SubmitAnswer(1, 0)
	require.NoError(t, err)

	result, err := q.Finalize(1)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Score)

	stats, exists := ledger.Stats(1)
	require.True(t, exists)
	assert.Equal(t, 1, stats.Attempts)
	assert.Equal(t, 10, stats.BestScore)

	// the session is gone, a second finalize records nothing
	_, err = q.Finalize(1)
	assert.ErrorIs(t, err, ErrNoSession)

	stats, _ = ledger.Stats(1)
	assert.Equal(t, 1, stats.Attempts)
}

func TestQuizS_Finalize_tiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		right    int
		total    int
		wantTier models.Tier
	}{
		{name: "perfect score is champion", right: 10, total: 10, wantTier: models.TierChampion},
		{name: "70 percent is professional", right: 7, total: 10, wantTier: models.TierProfessional},
		{name: "exactly half is average", right: 5, total: 10, wantTier: models.TierAverage},
		{name: "below half is novice", right: 4, total: 10, wantTier: models.TierNovice},
		{name: "zero is novice", right: 0, total: 10, wantTier: models.TierNovice},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, _ := newQuizServiceTest(t, testQuestions(tt.total))
			q.StartQuiz(1)

			for i := 0; i < tt.total; i++ {
				answer := i % 4
				if i >= tt.right {
					answer = (i + 1) % 4
				}
				_, err := q.SubmitAnswer(1, answer)
				require.NoError(t, err)
			}

			result, err := q.Finalize(1)
			require.NoError(t, err)
			assert.Equal(t, tt.right*10, result.Score)
			assert.Equal(t, tt.wantTier, result.Tier)
		})
	}
}

func TestQuizS_Cancel(t *testing.T) {
	t.Parallel()

	q, ledger := newQuizServiceTest(t, testQuestions(2))

	assert.False(t, q.Cancel(1))

	q.StartQuiz(1)
	_, err := q.SubmitAnswer(1, 0)
	require.NoError(t, err)

	assert.True(t, q.Cancel(1))

	// a cancelled attempt is forfeited, never recorded
	_, exists := ledger.Stats(1)
	assert.False(t, exists)

	_, err = q.CurrentQuestion(1)
	assert.ErrorIs(t, err, ErrNoSession)
}
