package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("BOT_TOKEN", "abc")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("QUESTION_COUNT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "abc", cfg.TelegramToken)
	require.Equal(t, StoreFirestore, cfg.StoreBackend)
	require.Equal(t, 300, cfg.QuestionCount)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "tg")
	t.Setenv("STORE_BACKEND", StoreSQLite)
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("QUESTION_COUNT", "310")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "tg", cfg.TelegramToken)
	require.Equal(t, StoreSQLite, cfg.StoreBackend)
	require.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	require.Equal(t, 310, cfg.QuestionCount)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("QUESTION_COUNT", "many")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("QUESTION_COUNT", "")
	t.Setenv("STORE_BACKEND", "postgres")
	_, err = Load()
	require.Error(t, err)
}
