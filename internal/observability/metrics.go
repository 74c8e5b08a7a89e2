package observability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	// PipelineEvents считает входящие события по конечному состоянию конвейера
	PipelineEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lidbot_pipeline_events_total",
			Help: "Number of inbound chat events by terminal pipeline state",
		},
		[]string{"state"},
	)

	// ImportedQuestions считает записи импорта вопросов
	ImportedQuestions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lidbot_imported_questions_total",
			Help: "Number of imported question records",
		},
		[]string{"status"},
	)
)

// ServeMetrics отдаёт /metrics на addr до отмены ctx. Пустой addr отключает сервер.
func ServeMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Info("metrics server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
}
