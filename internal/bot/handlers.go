package bot

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonStartQuiz   = "🎯 شروع کوییز ⚽"
	ButtonLeaderboard = "🏆 جدول امتیازات"
	ButtonMyScore     = "📊 امتیاز من"
	ButtonHelp        = "ℹ️ راهنمایی"
	ButtonMainMenu    = "📋 منوی اصلی"
	ButtonPlayAgain   = "🔄 بازی مجدد"
	ButtonBack        = "🔙 بازگشت"
	ButtonCancelQuiz  = "❌ لغو کوییز"
)

const (
	textUnknownCommand = "دستور ناشناخته. از /start استفاده کن."
	textGenericError   = "⚠️ خطایی رخ داد! لطفا دوباره تلاش کن."
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Command without sender: %d", message.Chat.ID)
		return
	}

	switch message.Command() {
	case "start":
		t.handleStartCommand(message.Chat.ID, message.From.FirstName)
	case "help":
		t.handleHelpCommand(message.Chat.ID)
	case "quiz":
		t.quiz.startQuiz(message.Chat.ID, message.From.ID)
	case "score":
		t.score.sendStats(message.Chat.ID, message.From.ID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, textUnknownCommand)
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(chatID int64, firstName string) {
	welcomeText := fmt.Sprintf("سلام %s!\n", firstName) +
		"به Quiz Arena ⚽ خوش آمدید!\n\n" +
		"🎯 اینجا می‌تونی دانش فوتبالی خودت رو محک بزنی!\n\n" +
		"دستورات:\n" +
		"/start - شروع مجدد\n" +
		"/quiz - شروع کوییز جدید\n" +
		"/score - امتیاز تو\n" +
		"/help - راهنمایی\n\n" +
		"آماده‌ای؟ دکمه زیر رو بزن!"

	msg := tgbotapi.NewMessage(chatID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonStartQuiz, "start_quiz"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonLeaderboard, "leaderboard"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonMyScore, "my_score"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonHelp, "help"),
		),
	)
}

func (t *TelegramAPI) handleHelpCommand(chatID int64) {
	helpText := `📖 راهنمای Quiz Arena:

🎮 نحوه بازی:
۱. روی «شروع کوییز» کلیک کن
۲. به سوالات فوتبالی پاسخ بده
۳. برای هر پاسخ صحیح ۱۰ امتیاز بگیر
۴. در جدول امتیازات رقابت کن

🏆 سیستم امتیازدهی:
✅ پاسخ صحیح: +۱۰ امتیاز
❌ پاسخ اشتباه: ۰ امتیاز
⏰ زمان هر سوال: ۳۰ ثانیه

📊 دستورات:
/start - شروع ربات
/quiz - شروع کوییز جدید
/score - نمایش امتیاز تو
/help - این راهنما`

	msg := tgbotapi.NewMessage(chatID, helpText)
	msg.ReplyMarkup = backKeyboard()

	sendMessage(t.bot, msg)
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonBack, "main_menu"),
		),
	)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	if query.Message == nil || query.From == nil {
		log.Printf("CallbackQuery without message or sender: %v", query.ID)
		return
	}

	chatID := query.Message.Chat.ID
	data := query.Data

	switch {
	case data == "start_quiz":
		t.quiz.startQuiz(chatID, query.From.ID)

	case strings.HasPrefix(data, "answer_"):
		t.quiz.processAnswer(query)

	case data == "cancel_quiz":
		t.quiz.cancelQuiz(chatID, query.From.ID)

	case data == "leaderboard":
		t.score.sendLeaderboard(chatID)

	case data == "my_score":
		t.score.sendStats(chatID, query.From.ID)

	case data == "help":
		t.handleHelpCommand(chatID)

	case data == "main_menu":
		t.handleStartCommand(chatID, query.From.FirstName)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
