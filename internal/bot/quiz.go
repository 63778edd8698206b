package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/darkphonix1200/QZArena/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// questionPause is how long the answer feedback stays on screen before
// the next question appears. Display pacing only, the engine does not
// know about it.
const questionPause = 2 * time.Second

type QuizSI interface {
	StartQuiz(userID int64) (models.QuestionCard, bool)
	CurrentQuestion(userID int64) (models.QuestionCard, error)
	SubmitAnswer(userID int64, option int) (models.AnswerResult, error)
	Finalize(userID int64) (models.QuizResult, error)
	Cancel(userID int64) bool
}

type QuizT struct {
	bot     BotSender
	service QuizSI
	pause   time.Duration
}

func NewQuizTAPI(bot BotSender, service QuizSI) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		pause:   questionPause,
	}
}

func (t *QuizT) startQuiz(chatID, userID int64) {
	card, _ := t.service.StartQuiz(userID)
	t.sendQuestion(chatID, card)
}

func (t *QuizT) sendQuestion(chatID int64, card models.QuestionCard) {
	text := fmt.Sprintf("📝 سوال %d از %d\n\n⚽ %s\n\nزمان پاسخ: ۳۰ ثانیه ⏰",
		card.Number, card.Total, card.Question.Text)

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range card.Question.Options {
		label := fmt.Sprintf("%c. %s", 'A'+i, option)
		button := tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("answer_%d", i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(ButtonCancelQuiz, "cancel_quiz"),
	))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) processAnswer(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	option, err := strconv.Atoi(strings.TrimPrefix(query.Data, "answer_"))
	if err != nil {
		log.Printf("Malformed answer callback %q from user %d: %v", query.Data, userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textGenericError))
		return
	}

	result, err := t.service.SubmitAnswer(userID, option)
	if err != nil {
		log.Printf("Failed to submit answer for user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textGenericError))
		return
	}

	feedback := "✅ درست جواب دادی! +۱۰ امتیاز 🎉"
	if !result.Correct {
		feedback = fmt.Sprintf("❌ اشتباه! پاسخ صحیح: %s", result.CorrectAnswer)
	}

	fullText := fmt.Sprintf("%s\n\n%s", query.Message.Text, feedback)
	editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, fullText)
	sendMessage(t.bot, editMsg)

	time.Sleep(t.pause)

	if !result.Done {
		card, err := t.service.CurrentQuestion(userID)
		if err != nil {
			log.Printf("Failed to get next question for user %d: %v", userID, err)
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, textGenericError))
			return
		}
		t.sendQuestion(chatID, card)
		return
	}

	t.showResults(chatID, userID)
}

func (t *QuizT) showResults(chatID, userID int64) {
	result, err := t.service.Finalize(userID)
	if err != nil {
		log.Printf("Failed to finalize quiz for user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, textGenericError))
		return
	}

	text := fmt.Sprintf("🎊 کوییز به پایان رسید!\n\n"+
		"📊 نتایج شما:\n"+
		"امتیاز: %d/%d\n"+
		"رتبه: %s\n\n"+
		"✅ پاسخ‌های صحیح: %d\n"+
		"❌ پاسخ‌های اشتباه: %d\n\n"+
		"دوباره بازی کنی؟",
		result.Score, result.Total, tierLabel(result.Tier), result.RightCount, result.WrongCount)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonPlayAgain, "start_quiz"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonLeaderboard, "leaderboard"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonMainMenu, "main_menu"),
		),
	)

	sendMessage(t.bot, msg)
}

func (t *QuizT) cancelQuiz(chatID, userID int64) {
	t.service.Cancel(userID)

	msg := tgbotapi.NewMessage(chatID, "کوییز لغو شد! 😊\nمی‌خوای دوباره شروع کنی؟")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 بله، شروع کن", "start_quiz"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonMainMenu, "main_menu"),
		),
	)

	sendMessage(t.bot, msg)
}

func tierLabel(tier models.Tier) string {
	switch tier {
	case models.TierChampion:
		return "🏆 قهرمان مطلق!"
	case models.TierProfessional:
		return "🎖️ حرفه‌ای فوتبال"
	case models.TierAverage:
		return "⭐ بازیکن متوسط"
	default:
		return "🌱 تازه‌کار"
	}
}
