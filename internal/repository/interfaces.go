// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/gamelog/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// List は全ユーザーを作成日時昇順で返す。
	List(ctx context.Context) ([]*model.User, error)

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmailOrNickname はメールアドレスまたはニックネームが一致するユーザーを検索する。
	// 重複チェックに使用する。見つからない場合はnilを返す。
	FindByEmailOrNickname(ctx context.Context, email, nickname string) (*model.User, error)

	// Create はユーザーを作成する。
	Create(ctx context.Context, user *model.User) error

	// Update はユーザーを部分更新する。nilのフィールドは変更しない。
	// 更新後のユーザーを返す。見つからない場合はnilを返す。
	Update(ctx context.Context, id string, update *model.UserUpdate) (*model.User, error)

	// DeleteByID は指定IDのユーザーを削除する。
	// 関連するplay_sessionsはCASCADE削除される。
	// 削除対象が存在しなかった場合はfalseを返す。
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// GameRepository はゲームカタログの読み取りインターフェース。
// カタログは静的な参照データのため書き込み操作を持たない。
type GameRepository interface {
	// List は全ゲームを作成日時昇順で返す。
	List(ctx context.Context) ([]*model.Game, error)

	// FindByID は指定IDのゲームを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Game, error)
}

// PlaySessionRepository はプレイセッションの永続化インターフェース。
// セッションはイミュータブルな事実のため、更新・削除操作を持たない。
type PlaySessionRepository interface {
	// Create はプレイセッションを1回のINSERTで作成する。
	Create(ctx context.Context, session *model.PlaySession) error

	// ListByUserIDWithGame は指定ユーザーの全セッションをゲーム名付きで
	// 作成日時昇順で返す。ゲームが解決できない場合は "Unknown Game" を入れる。
	ListByUserIDWithGame(ctx context.Context, userID string) ([]model.SessionWithGame, error)

	// ListAllWithNames は全セッションをユーザー情報とゲーム名付きで作成日時昇順で返す。
	// 参照が解決できない場合は "Unknown" / "Unknown Game" を入れる。
	ListAllWithNames(ctx context.Context) ([]model.SessionWithNames, error)
}
