package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	TelegramBotToken string `env:"API_TOKEN,required"`
	CourseName       string `env:"COURSE_NAME"`

	// Storage
	CardsFilePath string `env:"CARDS_FILE" envDefault:"data/cards.json"`
	LogFilePath   string `env:"LOG_FILE" envDefault:"logs/user_answers.log"`

	// Formatting
	MessageParseMode string `env:"MESSAGE_PARSE_MODE" envDefault:"Markdown"`

	// Optional reminder schedule (cron expression, empty disables it)
	ReminderCron string `env:"REMINDER_CRON"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
