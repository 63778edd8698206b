package repository

import (
	"sort"
	"sync"

	"github.com/darkphonix1200/QZArena/internal/models"
)

// Ledger is the process-wide attempt history for all users. Records are
// append-only and never pruned. All methods are safe for concurrent use;
// different users' handlers may record at the same time.
type Ledger struct {
	mu       sync.Mutex
	attempts map[int64][]models.AttemptRecord
	// order holds user IDs in order of their first recorded attempt.
	// Leaderboard ties are broken by this order, so rankings are
	// reproducible: first completed, first ranked.
	order []int64
}

func NewLedger() *Ledger {
	return &Ledger{
		attempts: make(map[int64][]models.AttemptRecord),
	}
}

// Record appends one completed attempt. It never fails and does not
// deduplicate; the caller finalizes a session at most once.
func (l *Ledger) Record(userID int64, record models.AttemptRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.attempts[userID]; !exists {
		l.order = append(l.order, userID)
	}
	l.attempts[userID] = append(l.attempts[userID], record)
}

func (l *Ledger) BestScore(userID int64) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, exists := l.attempts[userID]
	if !exists {
		return 0, false
	}

	best := 0
	for _, r := range records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best, true
}

func (l *Ledger) Stats(userID int64) (models.UserStats, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, exists := l.attempts[userID]
	if !exists {
		return models.UserStats{}, false
	}

	var best, sum int
	for _, r := range records {
		if r.Score > best {
			best = r.Score
		}
		sum += r.Score
	}

	return models.UserStats{
		Attempts:   len(records),
		BestScore:  best,
		AvgScore:   sum / len(records),
		LastPlayed: records[len(records)-1].Date,
	}, true
}

// TopN returns up to n users with their best scores, highest first.
// The sort is stable over first-attempt order, so equal scores keep
// their first-completed ranking.
func (l *Ledger) TopN(n int) []models.LeaderboardEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]models.LeaderboardEntry, 0, len(l.order))
	for _, userID := range l.order {
		best := 0
		for _, r := range l.attempts[userID] {
			if r.Score > best {
				best = r.Score
			}
		}
		entries = append(entries, models.LeaderboardEntry{UserID: userID, BestScore: best})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].BestScore > entries[j].BestScore
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
