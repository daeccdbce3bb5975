package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hitoshi/gamelog/internal/model"
)

// バリデーションの制約値
const (
	maxNameLength     = 50
	maxNicknameLength = 30
)

var (
	// emailPattern はメールアドレスの形式チェック。
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// nicknamePattern はニックネームに許可される文字種。
	nicknamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// normalizeEmail はメールアドレスを小文字化してトリムする。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail はメールアドレスを検証する。
func validateEmail(email string) *model.FieldError {
	if email == "" {
		return &model.FieldError{Field: "email", Message: "Email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &model.FieldError{Field: "email", Message: "Invalid email format"}
	}
	return nil
}

// validateName はfirstName/lastNameを検証する。
func validateName(field, value, label string) *model.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return &model.FieldError{Field: field, Message: label + " is required"}
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return &model.FieldError{Field: field, Message: label + " must be less than 50 characters"}
	}
	return nil
}

// validateNickname はニックネームを検証する。
func validateNickname(nickname string) *model.FieldError {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return &model.FieldError{Field: "nickname", Message: "Nickname is required"}
	}
	if utf8.RuneCountInString(nickname) > maxNicknameLength {
		return &model.FieldError{Field: "nickname", Message: "Nickname must be less than 30 characters"}
	}
	if !nicknamePattern.MatchString(nickname) {
		return &model.FieldError{Field: "nickname", Message: "Nickname can only contain letters, numbers, and underscores"}
	}
	return nil
}

// validateProfilePicture はプロフィール画像を検証する。
// 絵文字1文字、またはアップロード画像のパス（/uploads/で始まる）のみ許可する。
// 空文字列は「未設定」として許可される。
func validateProfilePicture(value string) *model.FieldError {
	if value == "" {
		return nil
	}
	if strings.HasPrefix(value, "/uploads/") {
		return nil
	}
	if isSingleEmoji(value) {
		return nil
	}
	return &model.FieldError{Field: "profilePicture", Message: "Profile picture must be an emoji or uploaded image path"}
}

// isSingleEmoji は文字列が絵文字1文字かどうかを判定する。
// Goの正規表現は\p{Emoji}を持たないため、主要な絵文字ブロックの範囲判定で代替する。
func isSingleEmoji(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // 絵文字・ピクトグラム各ブロック
		return true
	case r >= 0x2600 && r <= 0x27BF: // その他の記号、装飾記号
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // 矢印・記号の絵文字
		return true
	default:
		return false
	}
}
