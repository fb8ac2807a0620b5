package telegram

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-cards-bot/internal/quiz"
)

func (b *Bot) handleIncomingMessage(msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		return
	}

	log.Printf("Incoming command /%s from %d (@%s)", msg.Command(), msg.From.ID, msg.From.UserName)

	switch msg.Command() {
	case "start":
		b.sendMessage(msg.Chat.ID, fmt.Sprintf("Привет! Я помогу тебе подготовиться к базовым вопросам по %s. Напиши /quiz для начала.", b.course))
	case "quiz":
		b.sendCard(msg.From.ID, msg.Chat.ID)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	switch cb.Data {
	case showAnswerCmd:
		b.handleShowAnswer(cb)
	case nextQuestionCmd:
		b.sendCard(cb.From.ID, cb.Message.Chat.ID)
	}
}

// sendCard draws the next unseen card for the user and presents it with
// a "show answer" button. On exhaustion the user's history has already
// been reset, so the next /quiz starts a fresh pass.
func (b *Bot) sendCard(userID, chatID int64) {
	card, err := b.quiz.NextCard(userID)
	if errors.Is(err, quiz.ErrDeckExhausted) {
		b.sendMessage(chatID, "Ты прошёл все карточки! Напиши /quiz, чтобы начать заново.")
		return
	}
	if err != nil {
		log.Printf("failed to pick next card for %d: %v", userID, err)
		b.sendMessage(chatID, "Что-то пошло не так, попробуй ещё раз.")
		return
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Показать ответ", showAnswerCmd),
		),
	)

	out := tgbotapi.NewMessage(chatID, fmt.Sprintf("Категория: *%s*\n\n❓ *%s*", escapeMarkdown(card.Category), escapeMarkdown(card.Question)))
	out.ParseMode = b.parseMode
	out.ReplyMarkup = kb
	if _, err := b.s.Send(out); err != nil {
		log.Printf("failed to send card: %v", err)
	}
}

func (b *Bot) handleShowAnswer(cb *tgbotapi.CallbackQuery) {
	answer, err := b.quiz.RevealAnswer(cb.From.ID, cb.From.UserName)
	if errors.Is(err, quiz.ErrNoActiveCard) {
		alert := tgbotapi.NewCallbackWithAlert(cb.ID, "❌ У тебя нет активной карточки!")
		if _, err := b.s.Request(alert); err != nil {
			log.Printf("failed to answer callback: %v", err)
		}
		return
	}
	if err != nil {
		// The reveal itself succeeded; the audit write did not. The user
		// still gets the answer.
		log.Printf("failed to log answer for %d: %v", cb.From.ID, err)
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Следующий вопрос", nextQuestionCmd),
		),
	)

	out := tgbotapi.NewMessage(cb.From.ID, fmt.Sprintf("✅ *Ответ:*\n%s", escapeMarkdown(answer)))
	out.ParseMode = b.parseMode
	out.ReplyMarkup = kb
	if _, err := b.s.Send(out); err != nil {
		log.Printf("failed to send answer: %v", err)
	}
}

// escapeMarkdown escapes the Telegram Markdown (v1) special characters.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
