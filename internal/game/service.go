// Package game はゲームカタログのドメインロジックを提供する。
package game

import (
	"context"
	"fmt"

	"github.com/hitoshi/gamelog/internal/model"
	"github.com/hitoshi/gamelog/internal/repository"
)

// Service はゲームカタログのサービス層。
// カタログは読み取り専用で、マイグレーションのシードで投入される。
type Service struct {
	gameRepo repository.GameRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(gameRepo repository.GameRepository) *Service {
	return &Service{gameRepo: gameRepo}
}

// List は登録済みの全ゲームを返す。
func (s *Service) List(ctx context.Context) ([]*model.Game, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// Get は指定IDのゲームを返す。存在しない場合はGAME_NOT_FOUNDを返す。
func (s *Service) Get(ctx context.Context, id string) (*model.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}
	if game == nil {
		return nil, model.NewGameNotFoundError(id)
	}
	return game, nil
}
