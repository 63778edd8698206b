package service

import (
	"errors"

	"github.com/darkphonix1200/QZArena/internal/models"
	"go.uber.org/zap"
)

var ErrNoAttempts = errors.New("no recorded attempts for user")

type ScoreS struct {
	ledger ScoreRI
	log    *zap.Logger
}

func NewScoreService(ledger ScoreRI, log *zap.Logger) *ScoreS {
	return &ScoreS{
		ledger: ledger,
		log:    log,
	}
}

func (s *ScoreS) Stats(userID int64) (models.UserStats, error) {
	stats, exists := s.ledger.Stats(userID)
	if !exists {
		return models.UserStats{}, ErrNoAttempts
	}
	return stats, nil
}

func (s *ScoreS) Leaderboard(n int) []models.LeaderboardEntry {
	return s.ledger.TopN(n)
}
