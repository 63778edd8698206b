package config

import (
	"fmt"
	"os"
	"time"

	"github.com/darkphonix1200/QZArena/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig  `mapstructure:"app" validate:"required"`
	BotToken string     `mapstructure:"bot_token" validate:"required"`
	Quiz     QuizConfig `mapstructure:"quiz" validate:"required"`
	Env      string     `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	UpdateTimeout time.Duration `mapstructure:"update_timeout" validate:"min=1"`
}

type QuizConfig struct {
	QuestionsFile   string `mapstructure:"questions_file" validate:"required"`
	LeaderboardSize int    `mapstructure:"leaderboard_size" validate:"min=1,max=50"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("bot_token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("quiz.questions_file", "QUESTIONS_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind QUESTIONS_FILE: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
