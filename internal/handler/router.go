package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/gamelog/internal/metrics"
	"github.com/hitoshi/gamelog/internal/middleware"
	"github.com/hitoshi/gamelog/internal/model"
)

// DBPinger はヘルスチェックで使用するデータベース疎通確認のインターフェース。
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Collector         metrics.MetricsCollector
	Gatherer          prometheus.Gatherer

	// ヘルスチェック
	DB DBPinger

	// サービス
	UserService    UserServiceInterface
	GameService    GameServiceInterface
	SessionService SessionServiceInterface
	WeatherService WeatherServiceInterface
	UploadService  UploadServiceInterface

	// 静的配信
	UploadDir     string
	UploadMaxSize int64
	DefaultCity   string
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → CORS → Logging → Metrics → RateLimit
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewMetricsMiddleware(deps.Collector))
	r.Use(deps.RateLimiter.Middleware())

	userHandler := NewUserHandler(deps.UserService)
	gameHandler := NewGameHandler(deps.GameService)
	sessionHandler := NewSessionHandler(deps.SessionService)
	weatherHandler := NewWeatherHandler(deps.WeatherService, deps.DefaultCity)
	uploadHandler := NewUploadHandler(deps.UploadService, deps.UploadMaxSize)

	// ヘルスチェック
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.DB.PingContext(r.Context()); err != nil {
			slog.Error("health check failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Prometheusスクレイプ
	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))

	// ユーザー管理
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Post("/", userHandler.CreateUser)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Put("/", userHandler.UpdateUser)
			r.Delete("/", userHandler.DeleteUser)
		})
	})

	// ゲームカタログ
	r.Route("/api/games", func(r chi.Router) {
		r.Get("/", gameHandler.ListGames)
		r.Get("/{id}", gameHandler.GetGame)
	})

	// プレイセッション
	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/", sessionHandler.ListSessions)
		r.Post("/", sessionHandler.CreateSession)
	})

	// グローバル集計
	r.Get("/api/statistics", sessionHandler.GetStatistics)

	// 天気プロキシ
	r.Route("/api/weather", func(r chi.Router) {
		r.Get("/", weatherHandler.GetDefaultWeather)
		r.Get("/{city}", weatherHandler.GetWeatherByCity)
	})

	// ファイルアップロード
	r.Post("/api/upload/profile-picture", uploadHandler.UploadProfilePicture)

	// アップロード済み画像の静的配信
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	// 未定義ルートにも統一エラーフォーマットで応答する
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeAPIErrorResponse(w, http.StatusNotFound, &model.APIError{
			Code:     "ROUTE_NOT_FOUND",
			Message:  "指定されたエンドポイントが見つかりません。",
			Category: "routing",
			Action:   "リクエストURLを確認してください。",
		})
	})

	return r
}
