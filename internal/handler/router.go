package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/extracker/internal/metrics"
	"github.com/hitoshi/extracker/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string

	// ヘルスチェック
	HealthChecker HealthChecker

	// メトリクス（nilの場合は/metricsを公開しない）
	Metrics         *metrics.Collector
	MetricsGatherer prometheus.Gatherer

	// ドメインサービス
	UserService     UserServiceInterface
	ExerciseService ExerciseServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → CORS → Logging → Metrics
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewLoggingMiddleware(slog.Default()))
	if deps.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	}

	userHandler := NewUserHandler(deps.UserService, deps.Metrics)
	exerciseHandler := NewExerciseHandler(deps.ExerciseService, deps.Metrics)
	healthHandler := NewHealthHandler(deps.HealthChecker)

	// ランディングページと運用エンドポイント
	r.Get("/", Landing)
	r.Get("/health", healthHandler.Check)
	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// ユーザーとエクササイズのAPI
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/exercises", exerciseHandler.LogExercise)
			r.Get("/logs", exerciseHandler.GetLogs)
		})
	})

	return r
}
