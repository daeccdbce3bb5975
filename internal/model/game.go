// Package model はドメインモデルを定義する。
package model

import "time"

// Game はゲームカタログの1エントリを表す。
// カタログはマイグレーションで投入される静的な参照データで、APIからは作成できない。
type Game struct {
	ID        string
	Name      string
	ImageURL  string
	CreatedAt time.Time
}
