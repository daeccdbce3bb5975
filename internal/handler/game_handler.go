package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/gamelog/internal/model"
)

// GameServiceInterface はゲームハンドラーが必要とするサービスインターフェース。
type GameServiceInterface interface {
	// List は全ゲームを返す。
	List(ctx context.Context) ([]*model.Game, error)
	// Get は指定IDのゲームを返す。
	Get(ctx context.Context, id string) (*model.Game, error)
}

// GameHandler はゲームカタログのHTTPハンドラー。
type GameHandler struct {
	service GameServiceInterface
}

// NewGameHandler はGameHandlerを生成する。
func NewGameHandler(service GameServiceInterface) *GameHandler {
	return &GameHandler{service: service}
}

// gameResponse はゲーム情報のAPIレスポンス。
type gameResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func toGameResponse(g *model.Game) gameResponse {
	return gameResponse{
		ID:        g.ID,
		Name:      g.Name,
		ImageURL:  g.ImageURL,
		CreatedAt: g.CreatedAt,
	}
}

// ListGames はゲームカタログを返す。
// GET /api/games
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]gameResponse, 0, len(games))
	for _, g := range games {
		responses = append(responses, toGameResponse(g))
	}

	writeJSON(w, http.StatusOK, responses)
}

// GetGame はゲーム詳細を返す。
// GET /api/games/{id}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	game, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGameResponse(game))
}
