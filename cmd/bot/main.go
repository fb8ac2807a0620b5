package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"quiz-cards-bot/internal/cards"
	"quiz-cards-bot/internal/config"
	"quiz-cards-bot/internal/quiz"
	"quiz-cards-bot/internal/scheduler"
	"quiz-cards-bot/internal/storage"
	"quiz-cards-bot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	bank, err := cards.Load(cfg.CardsFilePath)
	if err != nil {
		log.Fatalf("failed to load card bank: %v", err)
	}
	log.Printf("loaded %d cards from %s", bank.Count(), cfg.CardsFilePath)

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init answer log: %v", err)
		} else {
			rec = fr
		}
	}

	svc := quiz.NewService(
		bank,
		quiz.NewSessions(),
		quiz.NewSelector(rand.NewSource(time.Now().UnixNano())),
		rec,
	)

	bot, err := telegram.New(cfg.TelegramBotToken, svc, cfg.CourseName, cfg.MessageParseMode)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.ReminderCron != "" {
		sch := scheduler.New()
		sch.SetRemindFunc(bot.RemindUsers)
		if err := sch.Start(cfg.ReminderCron); err != nil {
			log.Printf("failed to start reminder scheduler: %v", err)
		} else {
			defer sch.Stop()
		}
	}

	bot.Start(context.Background())
}
