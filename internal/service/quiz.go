package service

import (
	"errors"
	"time"

	"github.com/darkphonix1200/QZArena/internal/models"
	"github.com/darkphonix1200/QZArena/internal/storage/cache"
	"go.uber.org/zap"
)

const pointsPerAnswer = 10

var (
	ErrNoSession        = errors.New("no quiz session for user")
	ErrQuizComplete     = errors.New("quiz already complete")
	ErrQuizNotComplete  = errors.New("quiz not complete yet")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// QuizS drives a session through the question bank: it hands out
// questions, grades answers and records finished attempts. Sessions
// move only forward; a question is never asked twice in one attempt.
type QuizS struct {
	bank     BankI
	sessions *cache.Cache
	ledger   QuizRI
	log      *zap.Logger
}

func NewQuizService(bank BankI, sessions *cache.Cache, ledger QuizRI, log *zap.Logger) *QuizS {
	return &QuizS{
		bank:     bank,
		sessions: sessions,
		ledger:   ledger,
		log:      log,
	}
}

// StartQuiz resets the user's session to the first question. The
// returned flag reports that an in-progress attempt was discarded;
// a restart silently forfeits it.
func (q *QuizS) StartQuiz(userID int64) (models.QuestionCard, bool) {
	prior, exists := q.sessions.GetSession(userID)
	discarded := exists && prior.Current < q.bank.Length()

	q.sessions.SetSession(userID, models.Session{
		UserID:    userID,
		StartedAt: time.Now(),
	})

	if discarded {
		q.log.Info("discarded in-progress quiz on restart",
			zap.Int64("user_id", userID), zap.Int("at_question", prior.Current))
	}

	return q.card(0), discarded
}

func (q *QuizS) card(index int) models.QuestionCard {
	return models.QuestionCard{
		Question: q.bank.At(index),
		Number:   index + 1,
		Total:    q.bank.Length(),
	}
}

func (q *QuizS) CurrentQuestion(userID int64) (models.QuestionCard, error) {
	session, exists := q.sessions.GetSession(userID)
	if !exists {
		return models.QuestionCard{}, ErrNoSession
	}
	if session.Current >= q.bank.Length() {
		return models.QuestionCard{}, ErrQuizComplete
	}

	return q.card(session.Current), nil
}

// SubmitAnswer grades the current question and advances the session.
// The index advances whether the answer was right or wrong; on a wrong
// answer the result carries the correct option's text for the reply.
func (q *QuizS) SubmitAnswer(userID int64, option int) (models.AnswerResult, error) {
	session, exists := q.sessions.GetSession(userID)
	if !exists {
		return models.AnswerResult{}, ErrNoSession
	}
	if session.Current >= q.bank.Length() {
		return models.AnswerResult{}, ErrQuizComplete
	}

	question := q.bank.At(session.Current)
	if option < 0 || option >= len(question.Options) {
		return models.AnswerResult{}, ErrOptionOutOfRange
	}

	result := models.AnswerResult{Correct: option == question.Correct}
	if result.Correct {
		result.Points = pointsPerAnswer
		session.Score += pointsPerAnswer
	} else {
		result.CorrectAnswer = question.Options[question.Correct]
	}

	session.Current++
	result.Done = session.Current >= q.bank.Length()
	q.sessions.SetSession(userID, session)

	return result, nil
}

func (q *QuizS) IsComplete(userID int64) bool {
	session, exists := q.sessions.GetSession(userID)
	return exists && session.Current >= q.bank.Length()
}

// Finalize computes the attempt's result, records it in the ledger and
// discards the session. It only succeeds once per attempt: the session
// is gone afterwards, so a repeat call fails with ErrNoSession.
func (q *QuizS) Finalize(userID int64) (models.QuizResult, error) {
	session, exists := q.sessions.GetSession(userID)
	if !exists {
		return models.QuizResult{}, ErrNoSession
	}
	if session.Current < q.bank.Length() {
		return models.QuizResult{}, ErrQuizNotComplete
	}

	total := q.bank.Length() * pointsPerAnswer
	right := session.Score / pointsPerAnswer

	result := models.QuizResult{
		Score:      session.Score,
		Total:      total,
		RightCount: right,
		WrongCount: q.bank.Length() - right,
		Tier:       tierFor(session.Score, total),
	}

	q.ledger.Record(userID, models.AttemptRecord{
		Score:         session.Score,
		QuestionCount: q.bank.Length(),
		Date:          time.Now(),
	})
	q.sessions.DeleteSession(userID)

	q.log.Info("quiz finished",
		zap.Int64("user_id", userID),
		zap.Int("score", session.Score),
		zap.String("tier", string(result.Tier)))

	return result, nil
}

// Cancel discards the user's attempt without recording it.
func (q *QuizS) Cancel(userID int64) bool {
	_, exists := q.sessions.GetSession(userID)
	if exists {
		q.sessions.DeleteSession(userID)
		q.log.Info("quiz cancelled", zap.Int64("user_id", userID))
	}
	return exists
}

func tierFor(score, total int) models.Tier {
	switch {
	case score == total:
		return models.TierChampion
	case score*10 >= total*7:
		return models.TierProfessional
	case score*2 >= total:
		return models.TierAverage
	default:
		return models.TierNovice
	}
}
