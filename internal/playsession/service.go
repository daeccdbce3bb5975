// Package playsession はプレイセッション記録のドメインロジックを提供する。
package playsession

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/gamelog/internal/model"
	"github.com/hitoshi/gamelog/internal/repository"
	"github.com/hitoshi/gamelog/internal/stats"
)

// Service はプレイセッションのサービス層。
// セッションは記録後に変更・削除できない追記専用のログとして扱う。
type Service struct {
	sessionRepo repository.PlaySessionRepository
	userRepo    repository.UserRepository
	gameRepo    repository.GameRepository
	recorded    func()
}

// NewService はServiceの新しいインスタンスを生成する。
// recordedはセッション記録成功時に呼ばれるフック。メトリクス計上に使い、nilでもよい。
func NewService(sessionRepo repository.PlaySessionRepository, userRepo repository.UserRepository, gameRepo repository.GameRepository, recorded func()) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		gameRepo:    gameRepo,
		recorded:    recorded,
	}
}

// GlobalStatistics は全ユーザー横断の集計結果。
type GlobalStatistics struct {
	Leaderboard   []stats.LeaderboardEntry `json:"leaderboard"`
	PerGameTotals []stats.GameTotal        `json:"perGameTotals"`
	PerDayTotals  []stats.DayTotal         `json:"perDayTotals"`
}

// Statistics は全セッションからリーダーボード、ゲーム別合計、日別合計を集計する。
// セッションが1件もない場合も空のスライスを返し、nullにはしない。
func (s *Service) Statistics(ctx context.Context) (*GlobalStatistics, error) {
	sessions, err := s.sessionRepo.ListAllWithNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := &GlobalStatistics{
		Leaderboard:   stats.ComputeLeaderboard(sessions),
		PerGameTotals: stats.ComputePerGameTotals(sessions),
		PerDayTotals:  stats.ComputePerUserPerDayTotals(sessions),
	}
	if result.Leaderboard == nil {
		result.Leaderboard = []stats.LeaderboardEntry{}
	}
	if result.PerGameTotals == nil {
		result.PerGameTotals = []stats.GameTotal{}
	}
	if result.PerDayTotals == nil {
		result.PerDayTotals = []stats.DayTotal{}
	}
	return result, nil
}

// CreateInput はセッション記録の入力。
type CreateInput struct {
	UserID          string
	GameID          string
	DurationSeconds int
}

// List は全セッションをユーザー名・ゲーム名付きで記録順に返す。
func (s *Service) List(ctx context.Context) ([]model.SessionWithNames, error) {
	sessions, err := s.sessionRepo.ListAllWithNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Create はプレイセッションを記録する。
// userIdとgameIdは実在するレコードを参照していなければならない。
func (s *Service) Create(ctx context.Context, input CreateInput) (*model.PlaySession, error) {
	var fields []model.FieldError
	if input.UserID == "" {
		fields = append(fields, model.FieldError{Field: "userId", Message: "User is required"})
	}
	if input.GameID == "" {
		fields = append(fields, model.FieldError{Field: "gameId", Message: "Game is required"})
	}
	if input.DurationSeconds <= 0 {
		fields = append(fields, model.FieldError{Field: "durationSeconds", Message: "Duration must be a positive number"})
	}
	if len(fields) > 0 {
		return nil, model.NewValidationError(fields)
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError(input.UserID)
	}

	game, err := s.gameRepo.FindByID(ctx, input.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}
	if game == nil {
		return nil, model.NewGameNotFoundError(input.GameID)
	}

	session := &model.PlaySession{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		GameID:          input.GameID,
		DurationSeconds: input.DurationSeconds,
		CreatedAt:       time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if s.recorded != nil {
		s.recorded()
	}

	slog.Info("play session recorded",
		slog.String("session_id", session.ID),
		slog.String("user_id", session.UserID),
		slog.String("game_id", session.GameID),
		slog.Int("duration_seconds", session.DurationSeconds),
	)

	return session, nil
}
