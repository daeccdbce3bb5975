package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/gamelog/internal/model"
)

// PostgresGameRepo はPostgreSQLを使用したゲームカタログリポジトリ。
type PostgresGameRepo struct {
	db *sql.DB
}

// NewPostgresGameRepo はPostgresGameRepoを生成する。
func NewPostgresGameRepo(db *sql.DB) *PostgresGameRepo {
	return &PostgresGameRepo{db: db}
}

// List は全ゲームを作成日時昇順で返す。
func (r *PostgresGameRepo) List(ctx context.Context) ([]*model.Game, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, image_url, created_at
		 FROM games
		 ORDER BY created_at ASC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*model.Game
	for rows.Next() {
		game := &model.Game{}
		if err := rows.Scan(&game.ID, &game.Name, &game.ImageURL, &game.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}

// FindByID は指定IDのゲームを取得する。見つからない場合はnilを返す。
func (r *PostgresGameRepo) FindByID(ctx context.Context, id string) (*model.Game, error) {
	game := &model.Game{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, image_url, created_at FROM games WHERE id = $1`,
		id,
	).Scan(&game.ID, &game.Name, &game.ImageURL, &game.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find game by ID: %w", err)
	}

	return game, nil
}

// compile-time interface check
var _ GameRepository = (*PostgresGameRepo)(nil)
