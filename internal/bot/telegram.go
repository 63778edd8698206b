package bot

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ServiceI interface {
	QuizSI
	ScoreSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
}

type TelegramAPI struct {
	bot   *tgbotapi.BotAPI
	quiz  *QuizT
	score *ScoreT
}

func NewTelegramAPI(botToken, env string, service ServiceI, topSize int) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		bot:   bot,
		quiz:  NewQuizTAPI(bot, service),
		score: NewScoreTAPI(bot, service, topSize),
	}, nil
}

func (t *TelegramAPI) Start(timeout time.Duration) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(timeout.Seconds())

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		t.dispatch(update)
	}
}

// dispatch handles one update and never lets a handler take the
// process down. Failures are logged and answered with a generic
// try-again message; nothing is retried.
func (t *TelegramAPI) dispatch(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic while handling update: %v", r)
			if chatID := updateChatID(update); chatID != 0 {
				sendMessage(t.bot, tgbotapi.NewMessage(chatID, textGenericError))
			}
		}
	}()

	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			msg := tgbotapi.NewMessage(update.Message.Chat.ID, textUnknownCommand)
			sendMessage(t.bot, msg)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}
