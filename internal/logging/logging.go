package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "lid-bot"

// New создаёт JSON-логгер с уровнем из LOG_LEVEL (debug, info, warn, error).
// Неизвестный уровень заменяется на info.
func New(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	return config.Build(
		zap.Fields(zap.String("service", serviceName)),
	)
}
