package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hitoshi/gamelog/internal/model"
	"github.com/hitoshi/gamelog/internal/playsession"
)

// SessionServiceInterface はセッションハンドラーが必要とするサービスインターフェース。
type SessionServiceInterface interface {
	// List は全セッションをユーザー名・ゲーム名付きで返す。
	List(ctx context.Context) ([]model.SessionWithNames, error)
	// Create はプレイセッションを記録する。
	Create(ctx context.Context, input playsession.CreateInput) (*model.PlaySession, error)
	// Statistics は全セッションからグローバル集計を返す。
	Statistics(ctx context.Context) (*playsession.GlobalStatistics, error)
}

// SessionHandler はプレイセッションのHTTPハンドラー。
type SessionHandler struct {
	service SessionServiceInterface
}

// NewSessionHandler はSessionHandlerを生成する。
func NewSessionHandler(service SessionServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// createSessionRequest はセッション記録リクエストのボディ。
type createSessionRequest struct {
	UserID          string `json:"userId"`
	GameID          string `json:"gameId"`
	DurationSeconds int    `json:"durationSeconds"`
}

// sessionResponse は記録されたセッションのAPIレスポンス。
type sessionResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	GameID          string    `json:"gameId"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}

// sessionUserRef はセッション一覧に埋め込まれるユーザー情報。
type sessionUserRef struct {
	Nickname  string `json:"nickname"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// sessionGameRef はセッション一覧に埋め込まれるゲーム情報。
type sessionGameRef struct {
	Name string `json:"name"`
}

// populatedSessionResponse はユーザー名・ゲーム名を解決したセッションのAPIレスポンス。
type populatedSessionResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	GameID          string         `json:"gameId"`
	DurationSeconds int            `json:"durationSeconds"`
	CreatedAt       time.Time      `json:"createdAt"`
	User            sessionUserRef `json:"user"`
	Game            sessionGameRef `json:"game"`
}

// ListSessions は全セッション一覧をユーザー名・ゲーム名付きで返す。
// GET /api/sessions
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]populatedSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, populatedSessionResponse{
			ID:              s.ID,
			UserID:          s.UserID,
			GameID:          s.GameID,
			DurationSeconds: s.DurationSeconds,
			CreatedAt:       s.CreatedAt,
			User: sessionUserRef{
				Nickname:  s.Nickname,
				FirstName: s.FirstName,
				LastName:  s.LastName,
			},
			Game: sessionGameRef{
				Name: s.GameName,
			},
		})
	}

	writeJSON(w, http.StatusOK, responses)
}

// CreateSession はプレイセッションを記録する。
// POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	created, err := h.service.Create(r.Context(), playsession.CreateInput{
		UserID:          req.UserID,
		GameID:          req.GameID,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		ID:              created.ID,
		UserID:          created.UserID,
		GameID:          created.GameID,
		DurationSeconds: created.DurationSeconds,
		CreatedAt:       created.CreatedAt,
	})
}

// GetStatistics はリーダーボード、ゲーム別合計、日別合計を返す。
// GET /api/statistics
func (h *SessionHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	statistics, err := h.service.Statistics(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statistics)
}
