package repository

import (
	"database/sql"
	"testing"

	"github.com/hitoshi/gamelog/internal/model"
)

// PostgresUserRepoはUserRepositoryインターフェースを満たすことを検証
func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

// NewPostgresUserRepoが正しく初期化されることを検証
func TestNewPostgresUserRepo_Initializes(t *testing.T) {
	repo := NewPostgresUserRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// nullableStringが空文字列をNULLとして扱うことを検証
func TestNullableString_EmptyBecomesNull(t *testing.T) {
	got := nullableString("")
	if got.Valid {
		t.Error("expected empty string to be invalid (NULL)")
	}

	got = nullableString("🦊")
	if !got.Valid || got.String != "🦊" {
		t.Errorf("nullableString(🦊) = %+v, want valid with value", got)
	}
}

// scanUserがprofile_pictureのNULLを空文字列として読むことを検証
func TestScanUser_NullProfilePictureBecomesEmpty(t *testing.T) {
	// sql.NullStringのゼロ値をそのまま確認する（DB接続なしの概念検証）
	var ns sql.NullString
	if ns.String != "" {
		t.Errorf("zero NullString.String = %q, want empty", ns.String)
	}
}

// 部分更新でnilフィールドが変更されない契約の確認（DB接続なしの概念検証）
func TestUserUpdate_NilFieldsMeanNoChange(t *testing.T) {
	nickname := "newnick"
	update := &model.UserUpdate{Nickname: &nickname}

	if update.Email != nil {
		t.Error("Email should be nil when not updated")
	}
	if update.Nickname == nil || *update.Nickname != "newnick" {
		t.Error("Nickname should carry the new value")
	}
}
