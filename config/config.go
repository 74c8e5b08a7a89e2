package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Бэкенды хранилища документов
const (
	StoreFirestore = "firestore"
	StoreSQLite    = "sqlite"
	StoreMemory    = "memory"
)

type Config struct {
	TelegramToken string
	Debug         bool

	// Ключ сервисного аккаунта Firebase (JSON целиком)
	FirebaseCredentials string
	StoreBackend        string
	SQLitePath          string

	LogLevel    string
	MetricsAddr string

	QuestionCount int
	QuestionsFile string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		token = os.Getenv("BOT_TOKEN")
	}

	questionCount, err := strconv.Atoi(getEnvOrDefault("QUESTION_COUNT", "300"))
	if err != nil || questionCount <= 0 {
		return nil, fmt.Errorf("invalid QUESTION_COUNT: %q", os.Getenv("QUESTION_COUNT"))
	}

	cfg := &Config{
		TelegramToken:       token,
		Debug:               os.Getenv("DEBUG") == "true",
		FirebaseCredentials: os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY"),
		StoreBackend:        getEnvOrDefault("STORE_BACKEND", StoreFirestore),
		SQLitePath:          getEnvOrDefault("SQLITE_PATH", "./data/lidbot.db"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		MetricsAddr:         os.Getenv("METRICS_ADDR"),
		QuestionCount:       questionCount,
		QuestionsFile:       getEnvOrDefault("QUESTIONS_FILE", "data/questions.json"),
	}

	switch cfg.StoreBackend {
	case StoreFirestore, StoreSQLite, StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
