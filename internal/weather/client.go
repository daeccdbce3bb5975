package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"

	"github.com/hitoshi/gamelog/internal/model"
)

const (
	defaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com"
	defaultForecastBaseURL  = "https://api.open-meteo.com"
)

// Report は天気プロキシのレスポンス。
type Report struct {
	Location        string `json:"location"`
	Temperature     int    `json:"temperature"`
	Icon            string `json:"icon"`
	Condition       string `json:"condition"`
	RecommendedGame string `json:"recommendedGame"`
	Suggestion      string `json:"suggestion"`
}

// Client はopen-meteo APIから現在の天気を取得するクライアント。
// ジオコーディングで都市名を座標に解決してから現在の天気を取得する。
type Client struct {
	httpClient       *http.Client
	geocodingBaseURL string
	forecastBaseURL  string
}

// NewClient はClientの新しいインスタンスを生成する。
// httpClientにはNewSafeClientで生成したSSRF防止付きクライアントを渡す。
func NewClient(httpClient *http.Client) *Client {
	return &Client{
		httpClient:       httpClient,
		geocodingBaseURL: defaultGeocodingBaseURL,
		forecastBaseURL:  defaultForecastBaseURL,
	}
}

// geocodeResponse はジオコーディングAPIのレスポンス。
type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// forecastResponse は天気APIのレスポンス。
type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// FetchByCity は指定都市の現在の天気と推薦ゲームを返す。
// 都市が見つからない場合はCITY_NOT_FOUND、上流APIの障害はWEATHER_UPSTREAMを返す。
func (c *Client) FetchByCity(ctx context.Context, city string) (*Report, error) {
	geocodeURL := fmt.Sprintf("%s/v1/search?name=%s&count=1", c.geocodingBaseURL, url.QueryEscape(city))

	var geocode geocodeResponse
	if err := c.getJSON(ctx, geocodeURL, &geocode); err != nil {
		slog.Warn("geocoding request failed", slog.String("city", city), slog.String("error", err.Error()))
		return nil, model.NewWeatherUpstreamError()
	}
	if len(geocode.Results) == 0 {
		return nil, model.NewCityNotFoundError(city)
	}
	location := geocode.Results[0]

	forecastURL := fmt.Sprintf("%s/v1/forecast?latitude=%g&longitude=%g&current_weather=true",
		c.forecastBaseURL, location.Latitude, location.Longitude)

	var forecast forecastResponse
	if err := c.getJSON(ctx, forecastURL, &forecast); err != nil {
		slog.Warn("forecast request failed", slog.String("city", city), slog.String("error", err.Error()))
		return nil, model.NewWeatherUpstreamError()
	}

	rec := RecommendationForCode(forecast.CurrentWeather.WeatherCode)

	return &Report{
		Location:        fmt.Sprintf("%s, %s", location.Name, location.Country),
		Temperature:     roundHalfUp(forecast.CurrentWeather.Temperature),
		Icon:            rec.Icon,
		Condition:       rec.Condition,
		RecommendedGame: rec.Game,
		Suggestion:      fmt.Sprintf("Perfect weather for %s!", rec.Game),
	}, nil
}

// getJSON はGETリクエストを送信しレスポンスボディをJSONとしてデコードする。
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// roundHalfUp は0.5を常に正の方向へ丸める。
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
