package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/darkphonix1200/QZArena/internal/models"
	"github.com/darkphonix1200/QZArena/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ScoreSI interface {
	Stats(userID int64) (models.UserStats, error)
	Leaderboard(n int) []models.LeaderboardEntry
}

type ScoreT struct {
	bot     BotSender
	service ScoreSI
	topSize int
}

func NewScoreTAPI(bot BotSender, service ScoreSI, topSize int) *ScoreT {
	return &ScoreT{
		bot:     bot,
		service: service,
		topSize: topSize,
	}
}

var medals = []string{"🥇", "🥈", "🥉", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

func (t *ScoreT) sendLeaderboard(chatID int64) {
	entries := t.service.Leaderboard(t.topSize)

	var text string
	if len(entries) == 0 {
		text = "هنوز کسی بازی نکرده! اولین نفر باش! 🏆"
	} else {
		var sb strings.Builder
		sb.WriteString("🏆 جدول برترین‌ها:\n\n")
		for i, entry := range entries {
			medal := fmt.Sprintf("%d.", i+1)
			if i < len(medals) {
				medal = medals[i]
			}
			sb.WriteString(fmt.Sprintf("%s %s: %d امتیاز\n", medal, t.displayName(entry.UserID), entry.BestScore))
		}
		text = sb.String()
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = backKeyboard()

	sendMessage(t.bot, msg)
}

// displayName resolves a user's first name through the chat platform.
// The ledger only knows user IDs.
func (t *ScoreT) displayName(userID int64) string {
	chat, err := t.bot.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: userID},
	})
	if err != nil || chat.FirstName == "" {
		if err != nil {
			log.Printf("Failed to get chat %d: %v", userID, err)
		}
		return "کاربر"
	}
	return chat.FirstName
}

func (t *ScoreT) sendStats(chatID, userID int64) {
	stats, err := t.service.Stats(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoAttempts) {
			msg := tgbotapi.NewMessage(chatID, "هنوز بازی نکردی! اولین کوییز رو شروع کن! ⚽")
			msg.ReplyMarkup = statsKeyboard()
			sendMessage(t.bot, msg)
			return
		}

		log.Printf("Failed to get stats for user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textGenericError))
		return
	}

	text := fmt.Sprintf("📊 آمار شما:\n\n"+
		"🎮 تعداد بازی‌ها: %d\n"+
		"🏆 بهترین امتیاز: %d\n"+
		"📈 میانگین امتیاز: %d\n"+
		"📅 آخرین بازی: %s\n\n"+
		"ادامه بده! 💪",
		stats.Attempts, stats.BestScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = statsKeyboard()

	sendMessage(t.bot, msg)
}

func statsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonStartQuiz, "start_quiz"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonBack, "main_menu"),
		),
	)
}
