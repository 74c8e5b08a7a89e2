package storage

import (
	"time"

	"go.uber.org/zap"
)

// Option настройка репозитория
type Option func(*options)

type options struct {
	logger *zap.Logger
	now    func() time.Time
}

// WithLogger задаёт логгер репозитория
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// defaultClock текущее время UTC с точностью до микросекунд, как хранит Firestore
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func buildOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
		now:    defaultClock,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
