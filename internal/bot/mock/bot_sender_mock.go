package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type MockBot struct {
	SentMessages []tgbotapi.Chattable
	ChatNames    map[int64]string
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error) {
	name, exists := m.ChatNames[config.ChatID]
	if !exists {
		return tgbotapi.Chat{}, nil
	}
	return tgbotapi.Chat{ID: config.ChatID, FirstName: name}, nil
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
}
