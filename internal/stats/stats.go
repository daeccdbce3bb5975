// Package stats はプレイセッション一覧に対する純粋な集計処理を提供する。
// すべての関数はI/Oを持たないステートレスな計算で、リクエスト間で安全に並行実行できる。
package stats

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/hitoshi/gamelog/internal/model"
)

// GameStat は1ゲーム分の累計プレイ時間と全体に占める割合を表す。
// Minutesは記録されたduration_secondsの合計をそのまま分として表示する値
// （1記録秒 = 1表示分の表示仕様）。
type GameStat struct {
	Minutes    int `json:"minutes"`
	Percentage int `json:"percentage"`
}

// GameStats はゲーム名ごとの集計を初出順で保持するマップ。
// JSONへのシリアライズ時もキーの初出順を維持する。
type GameStats struct {
	names []string
	stats map[string]GameStat
}

// add はゲーム名の累計秒数に加算する。初出のゲーム名は末尾に追加される。
func (gs *GameStats) add(name string, seconds int) {
	if gs.stats == nil {
		gs.stats = make(map[string]GameStat)
	}
	stat, ok := gs.stats[name]
	if !ok {
		gs.names = append(gs.names, name)
	}
	stat.Minutes += seconds
	gs.stats[name] = stat
}

// Get は指定ゲーム名の集計を返す。
func (gs *GameStats) Get(name string) (GameStat, bool) {
	stat, ok := gs.stats[name]
	return stat, ok
}

// Names はゲーム名を初出順で返す。
func (gs *GameStats) Names() []string {
	return gs.names
}

// Len は集計されたゲーム数を返す。
func (gs *GameStats) Len() int {
	return len(gs.names)
}

// MarshalJSON はキーの初出順を維持したJSONオブジェクトを出力する。
func (gs *GameStats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range gs.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(gs.stats[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UserStatistics は1ユーザーのプロフィール統計を表す。
// ユーザープロフィールのJSONレスポンスのstatisticsキーにそのまま埋め込まれる。
type UserStatistics struct {
	GameStats     *GameStats `json:"gameStats"`
	TotalMinutes  int        `json:"totalMinutes"`
	TotalSessions int        `json:"totalSessions"`
}

// ComputeUserStatistics は1ユーザーの全セッションからゲームごとの累計プレイ時間と
// 全体に占める割合を計算する。
//
// 割合はゲームごとに独立して四捨五入され、合計が100になるような正規化は行わない
// （丸め誤差による数ポイントのずれは許容される仕様）。
// 入力が空の場合は空の統計を返し、除算は行わない。
func ComputeUserStatistics(sessions []model.SessionWithGame) UserStatistics {
	gameStats := &GameStats{}
	totalSeconds := 0

	for _, session := range sessions {
		totalSeconds += session.DurationSeconds
		gameStats.add(session.GameName, session.DurationSeconds)
	}

	// 1記録秒 = 1表示分の表示仕様
	totalMinutes := totalSeconds

	for _, name := range gameStats.names {
		stat := gameStats.stats[name]
		if totalSeconds > 0 {
			stat.Percentage = roundHalfUp(float64(stat.Minutes) / float64(totalSeconds) * 100)
		}
		gameStats.stats[name] = stat
	}

	return UserStatistics{
		GameStats:     gameStats,
		TotalMinutes:  totalMinutes,
		TotalSessions: len(sessions),
	}
}

// roundHalfUp は正の値を最近接整数に丸める。0.5はちょうど切り上げる。
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
