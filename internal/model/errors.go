// Package model はドメインモデルを定義する。
package model

import "fmt"

// FieldError はバリデーションエラーのフィールド単位の詳細を表す。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
// バリデーションエラーの場合はFieldsにフィールド単位の詳細が入る。
type APIError struct {
	Code     string       // エラーコード
	Message  string       // エラーメッセージ
	Category string       // カテゴリ: validation, conflict, not_found, upstream, system
	Action   string       // ユーザー向け対処方法
	Fields   []FieldError // フィールド単位のバリデーション詳細（任意）
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
	ErrCodeEmailAlreadyExists   = "EMAIL_ALREADY_EXISTS"
	ErrCodeNicknameAlreadyTaken = "NICKNAME_ALREADY_TAKEN"
	ErrCodeUserNotFound         = "USER_NOT_FOUND"
	ErrCodeGameNotFound         = "GAME_NOT_FOUND"
	ErrCodeCityNotFound         = "CITY_NOT_FOUND"
	ErrCodeWeatherUpstream      = "WEATHER_UPSTREAM"
	ErrCodeNoFileUploaded       = "NO_FILE_UPLOADED"
	ErrCodeInvalidFileType      = "INVALID_FILE_TYPE"
)

// NewValidationError はフィールド単位の詳細付きバリデーションエラーを生成する。
func NewValidationError(fields []FieldError) *APIError {
	return &APIError{
		Code:     ErrCodeValidationFailed,
		Message:  "入力内容に誤りがあります。",
		Category: "validation",
		Action:   "各フィールドのエラー内容を確認して修正してください。",
		Fields:   fields,
	}
}

// NewInvalidRequestError はリクエストボディの解析失敗エラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  "リクエストボディの解析に失敗しました。",
		Category: "validation",
		Action:   "正しいJSON形式でリクエストしてください。",
	}
}

// NewEmailAlreadyExistsError はメールアドレス重複エラーを生成する。
func NewEmailAlreadyExistsError() *APIError {
	return &APIError{
		Code:     ErrCodeEmailAlreadyExists,
		Message:  "このメールアドレスは既に登録されています。",
		Category: "conflict",
		Action:   "別のメールアドレスを使用してください。",
	}
}

// NewNicknameAlreadyTakenError はニックネーム重複エラーを生成する。
func NewNicknameAlreadyTakenError() *APIError {
	return &APIError{
		Code:     ErrCodeNicknameAlreadyTaken,
		Message:  "このニックネームは既に使用されています。",
		Category: "conflict",
		Action:   "別のニックネームを使用してください。",
	}
}

// NewUserNotFoundError はユーザー未検出エラーを生成する。
func NewUserNotFoundError(userID string) *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  fmt.Sprintf("指定されたユーザーが見つかりません: %s", userID),
		Category: "not_found",
		Action:   "ユーザーIDを確認してください。",
	}
}

// NewGameNotFoundError はゲーム未検出エラーを生成する。
func NewGameNotFoundError(gameID string) *APIError {
	return &APIError{
		Code:     ErrCodeGameNotFound,
		Message:  fmt.Sprintf("指定されたゲームが見つかりません: %s", gameID),
		Category: "not_found",
		Action:   "ゲームIDを確認してください。",
	}
}

// NewCityNotFoundError は天気検索で都市が見つからない場合のエラーを生成する。
func NewCityNotFoundError(city string) *APIError {
	return &APIError{
		Code:     ErrCodeCityNotFound,
		Message:  fmt.Sprintf("指定された都市が見つかりません: %s", city),
		Category: "not_found",
		Action:   "都市名のつづりを確認してください。",
	}
}

// NewWeatherUpstreamError は天気APIへの問い合わせ失敗エラーを生成する。
// 上流の詳細はログのみに記録し、レスポンスには含めない。
func NewWeatherUpstreamError() *APIError {
	return &APIError{
		Code:     ErrCodeWeatherUpstream,
		Message:  "天気情報の取得に失敗しました。",
		Category: "upstream",
		Action:   "しばらく待ってから再度お試しください。",
	}
}

// NewNoFileUploadedError はファイル未添付エラーを生成する。
func NewNoFileUploadedError() *APIError {
	return &APIError{
		Code:     ErrCodeNoFileUploaded,
		Message:  "ファイルがアップロードされていません。",
		Category: "validation",
		Action:   "profilePictureフィールドに画像ファイルを添付してください。",
	}
}

// NewInvalidFileTypeError は許可されていないファイル形式のエラーを生成する。
func NewInvalidFileTypeError(ext string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidFileType,
		Message:  fmt.Sprintf("許可されていないファイル形式です: %s", ext),
		Category: "validation",
		Action:   "png、jpg、jpeg、gif、webpのいずれかの画像を使用してください。",
	}
}
