package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-cards-bot/internal/quiz"
)

const (
	showAnswerCmd   = "show_answer"
	nextQuestionCmd = "next_question"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	s         sender
	quiz      *quiz.Service
	course    string
	parseMode string
}

func New(botToken string, svc *quiz.Service, courseName, parseMode string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		s:         botAPISender{api: api},
		quiz:      svc,
		course:    courseName,
		parseMode: parseMode,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				b.handleIncomingMessage(update.Message)
				continue
			}
			if update.CallbackQuery != nil {
				b.handleCallback(update.CallbackQuery)
				continue
			}
		}
	}
}

// RemindUsers pings every user who has drilled at least once. Hooked up
// to the cron scheduler when REMINDER_CRON is configured.
func (b *Bot) RemindUsers() {
	ids := b.quiz.Users()
	log.Printf("sending quiz reminder to %d users", len(ids))
	for _, id := range ids {
		b.sendMessage(id, "Пора повторить карточки! Напиши /quiz.")
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
