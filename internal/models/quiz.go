package models

import "time"

// Question is a single multiple-choice entry of the quiz data file.
// Questions are immutable after load; their file order is the order
// they are asked in.
type Question struct {
	Text    string   `json:"question" validate:"required"`
	Options []string `json:"options" validate:"min=2,dive,required"`
	Correct int      `json:"correct" validate:"min=0"`
}

// Session is one user's in-progress quiz attempt. A user has at most
// one session; starting a new quiz replaces it.
type Session struct {
	UserID    int64
	Current   int
	Score     int
	StartedAt time.Time
}

// AttemptRecord is one completed (not cancelled) quiz run.
type AttemptRecord struct {
	Score         int
	QuestionCount int
	Date          time.Time
}

type QuestionCard struct {
	Question Question
	Number   int
	Total    int
}

type AnswerResult struct {
	Correct       bool
	Points        int
	CorrectAnswer string
	Done          bool
}

type QuizResult struct {
	Score      int
	Total      int
	RightCount int
	WrongCount int
	Tier       Tier
}

type UserStats struct {
	Attempts   int
	BestScore  int
	AvgScore   int
	LastPlayed time.Time
}

type LeaderboardEntry struct {
	UserID    int64
	BestScore int
}

type Tier string

const (
	TierChampion     Tier = "champion"
	TierProfessional Tier = "professional"
	TierAverage      Tier = "average"
	TierNovice       Tier = "novice"
)
