package service

import (
	"github.com/darkphonix1200/QZArena/internal/models"
	"github.com/darkphonix1200/QZArena/internal/storage/cache"
	"go.uber.org/zap"
)

type BankI interface {
	Length() int
	At(index int) models.Question
}

type QuizRI interface {
	Record(userID int64, record models.AttemptRecord)
}

type ScoreRI interface {
	Stats(userID int64) (models.UserStats, bool)
	TopN(n int) []models.LeaderboardEntry
}

type LedgerI interface {
	QuizRI
	ScoreRI
}

type Service struct {
	*QuizS
	*ScoreS
}

func InitServices(bank BankI, sessions *cache.Cache, ledger LedgerI, log *zap.Logger) *Service {
	return &Service{
		QuizS:  NewQuizService(bank, sessions, ledger, log),
		ScoreS: NewScoreService(ledger, log),
	}
}
