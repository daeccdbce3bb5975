package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/gamelog/internal/weather"
)

// WeatherServiceInterface は天気ハンドラーが必要とするサービスインターフェース。
type WeatherServiceInterface interface {
	// FetchByCity は指定都市の現在の天気と推薦ゲームを返す。
	FetchByCity(ctx context.Context, city string) (*weather.Report, error)
}

// WeatherHandler は天気プロキシのHTTPハンドラー。
type WeatherHandler struct {
	service     WeatherServiceInterface
	defaultCity string
}

// NewWeatherHandler はWeatherHandlerを生成する。
func NewWeatherHandler(service WeatherServiceInterface, defaultCity string) *WeatherHandler {
	return &WeatherHandler{
		service:     service,
		defaultCity: defaultCity,
	}
}

// GetDefaultWeather はデフォルト都市の天気を返す。
// GET /api/weather
func (h *WeatherHandler) GetDefaultWeather(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.defaultCity)
}

// GetWeatherByCity は指定都市の天気を返す。
// GET /api/weather/{city}
func (h *WeatherHandler) GetWeatherByCity(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, chi.URLParam(r, "city"))
}

func (h *WeatherHandler) respond(w http.ResponseWriter, r *http.Request, city string) {
	report, err := h.service.FetchByCity(r.Context(), city)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
