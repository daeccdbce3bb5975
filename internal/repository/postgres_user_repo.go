package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/gamelog/internal/model"
)

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// List は全ユーザーを作成日時昇順で返す。
func (r *PostgresUserRepo) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, first_name, last_name, nickname, profile_picture, created_at, updated_at
		 FROM users
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, nickname, profile_picture, created_at, updated_at
		 FROM users
		 WHERE id = $1`,
		id,
	)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return user, nil
}

// FindByEmailOrNickname はメールアドレスまたはニックネームが一致するユーザーを検索する。
// 見つからない場合はnilを返す。複数一致する場合は最初の1件を返す。
func (r *PostgresUserRepo) FindByEmailOrNickname(ctx context.Context, email, nickname string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, nickname, profile_picture, created_at, updated_at
		 FROM users
		 WHERE email = $1 OR nickname = $2
		 LIMIT 1`,
		email, nickname,
	)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email or nickname: %w", err)
	}

	return user, nil
}

// Create はユーザーを作成する。
func (r *PostgresUserRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, first_name, last_name, nickname, profile_picture, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.FirstName, user.LastName, user.Nickname,
		nullableString(user.ProfilePicture), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Update はユーザーを部分更新する。nilのフィールドは変更しない。
// 見つからない場合はnilを返す。
func (r *PostgresUserRepo) Update(ctx context.Context, id string, update *model.UserUpdate) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET email           = COALESCE($2, email),
		     first_name      = COALESCE($3, first_name),
		     last_name       = COALESCE($4, last_name),
		     nickname        = COALESCE($5, nickname),
		     profile_picture = COALESCE($6, profile_picture),
		     updated_at      = now()
		 WHERE id = $1
		 RETURNING id, email, first_name, last_name, nickname, profile_picture, created_at, updated_at`,
		id, update.Email, update.FirstName, update.LastName, update.Nickname, update.ProfilePicture,
	)

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteByID は指定IDのユーザーを削除する。
// 関連するplay_sessionsはCASCADE削除される。
// 削除対象が存在しなかった場合はfalseを返す。
func (r *PostgresUserRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// rowScanner はsql.Rowとsql.Rowsの両方を受けるためのインターフェース。
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser はユーザー行を読み取る。profile_pictureのNULLは空文字列として扱う。
func scanUser(row rowScanner) (*model.User, error) {
	user := &model.User{}
	var profilePicture sql.NullString
	err := row.Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Nickname,
		&profilePicture, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.ProfilePicture = profilePicture.String
	return user, nil
}

// nullableString は空文字列をNULLとして保存するためのヘルパー。
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
