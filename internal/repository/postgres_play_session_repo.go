package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/gamelog/internal/model"
)

// PostgresPlaySessionRepo はPostgreSQLを使用したプレイセッションリポジトリ。
type PostgresPlaySessionRepo struct {
	db *sql.DB
}

// NewPostgresPlaySessionRepo はPostgresPlaySessionRepoを生成する。
func NewPostgresPlaySessionRepo(db *sql.DB) *PostgresPlaySessionRepo {
	return &PostgresPlaySessionRepo{db: db}
}

// Create はプレイセッションを作成する。
// 単一のINSERTで、同時リクエスト間の追加に対してストアレベルの原子性を持つ。
func (r *PostgresPlaySessionRepo) Create(ctx context.Context, session *model.PlaySession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO play_sessions (id, user_id, game_id, duration_seconds, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.UserID, session.GameID, session.DurationSeconds, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert play session: %w", err)
	}
	return nil
}

// ListByUserIDWithGame は指定ユーザーの全セッションをゲーム名付きで作成日時昇順で返す。
// ゲームが解決できないセッションも除外せず、名前を "Unknown Game" にして返す。
// 集計側は名前解決の失敗で中断しない。
func (r *PostgresPlaySessionRepo) ListByUserIDWithGame(ctx context.Context, userID string) ([]model.SessionWithGame, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.game_id, COALESCE(g.name, 'Unknown Game'), s.duration_seconds, s.created_at
		 FROM play_sessions s
		 LEFT JOIN games g ON g.id = s.game_id
		 WHERE s.user_id = $1
		 ORDER BY s.created_at ASC, s.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for user: %w", err)
	}
	defer rows.Close()

	var sessions []model.SessionWithGame
	for rows.Next() {
		var s model.SessionWithGame
		if err := rows.Scan(&s.ID, &s.GameID, &s.GameName, &s.DurationSeconds, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// ListAllWithNames は全セッションをユーザー情報とゲーム名付きで作成日時昇順で返す。
// 参照が解決できない場合は "Unknown" / "Unknown Game" にフォールバックする。
func (r *PostgresPlaySessionRepo) ListAllWithNames(ctx context.Context) ([]model.SessionWithNames, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.user_id, s.game_id,
		        COALESCE(u.nickname, 'Unknown'),
		        COALESCE(u.first_name, ''),
		        COALESCE(u.last_name, ''),
		        COALESCE(g.name, 'Unknown Game'),
		        s.duration_seconds, s.created_at
		 FROM play_sessions s
		 LEFT JOIN users u ON u.id = s.user_id
		 LEFT JOIN games g ON g.id = s.game_id
		 ORDER BY s.created_at ASC, s.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list all sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.SessionWithNames
	for rows.Next() {
		var s model.SessionWithNames
		err := rows.Scan(
			&s.ID, &s.UserID, &s.GameID,
			&s.Nickname, &s.FirstName, &s.LastName, &s.GameName,
			&s.DurationSeconds, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// compile-time interface check
var _ PlaySessionRepository = (*PostgresPlaySessionRepo)(nil)
