// Package model はドメインモデルを定義する。
package model

import "time"

// User はゲームをプレイするユーザーを表す。
// ProfilePictureは絵文字1文字、またはアップロード画像のパス（/uploads/...）のいずれか。
type User struct {
	ID             string
	Email          string
	FirstName      string
	LastName       string
	Nickname       string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserUpdate はユーザーの部分更新を表す。
// nilのフィールドは変更しない。
type UserUpdate struct {
	Email          *string
	FirstName      *string
	LastName       *string
	Nickname       *string
	ProfilePicture *string
}
