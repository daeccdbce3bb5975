// Package model はドメインモデルを定義する。
package model

import "time"

// PlaySession は1回のプレイ記録を表す。
// プレイタイマー停止時に1度だけ作成され、以後更新も削除もされないイミュータブルな事実。
// DurationSecondsは表示上「分」としてそのまま扱われる（1記録秒 = 1表示分）。
type PlaySession struct {
	ID              string
	UserID          string
	GameID          string
	DurationSeconds int
	CreatedAt       time.Time
}

// SessionWithGame はユーザーの1セッションにゲーム名を解決して結合した読み取りモデル。
// ゲームが解決できない場合、GameNameには "Unknown Game" が入る。
type SessionWithGame struct {
	ID              string
	GameID          string
	GameName        string
	DurationSeconds int
	CreatedAt       time.Time
}

// SessionWithNames は全セッション一覧用に、ユーザー情報とゲーム名を結合した読み取りモデル。
// 参照が解決できない場合、Nicknameは "Unknown"、GameNameは "Unknown Game" になる。
type SessionWithNames struct {
	ID              string
	UserID          string
	GameID          string
	Nickname        string
	FirstName       string
	LastName        string
	GameName        string
	DurationSeconds int
	CreatedAt       time.Time
}
