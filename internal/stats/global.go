package stats

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/hitoshi/gamelog/internal/model"
)

// leaderboardLimit はリーダーボードに表示する最大ユーザー数。
const leaderboardLimit = 10

// LeaderboardEntry はリーダーボードの1行を表す。
// FavoriteGameはそのユーザーの反復順で最初に現れたセッションのゲーム名であり、
// 最多プレイの計算ではない。
type LeaderboardEntry struct {
	Name         string `json:"name"`
	FavoriteGame string `json:"favoriteGame"`
	Minutes      int    `json:"minutes"`
}

// ComputeLeaderboard は全セッションからユーザーごとの累計プレイ時間を集計し、
// 累計の降順で最大10件を返す。同値は初出順を維持する（安定ソート）。
func ComputeLeaderboard(sessions []model.SessionWithNames) []LeaderboardEntry {
	var order []string
	totals := make(map[string]*LeaderboardEntry)

	for _, session := range sessions {
		entry, ok := totals[session.UserID]
		if !ok {
			entry = &LeaderboardEntry{
				Name:         session.Nickname,
				FavoriteGame: session.GameName,
			}
			totals[session.UserID] = entry
			order = append(order, session.UserID)
		}
		entry.Minutes += session.DurationSeconds
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, userID := range order {
		entries = append(entries, *totals[userID])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Minutes > entries[j].Minutes
	})

	if len(entries) > leaderboardLimit {
		entries = entries[:leaderboardLimit]
	}

	return entries
}

// GameTotal は1ゲームの累計プレイ時間を表す。
type GameTotal struct {
	Game    string `json:"game"`
	Minutes int    `json:"minutes"`
}

// ComputePerGameTotals は全セッションからゲームごとの累計プレイ時間を集計する。
// 初出順で返し、並べ替えは行わない。
func ComputePerGameTotals(sessions []model.SessionWithNames) []GameTotal {
	var order []string
	totals := make(map[string]int)

	for _, session := range sessions {
		if _, ok := totals[session.GameName]; !ok {
			order = append(order, session.GameName)
		}
		totals[session.GameName] += session.DurationSeconds
	}

	result := make([]GameTotal, 0, len(order))
	for _, name := range order {
		result = append(result, GameTotal{Game: name, Minutes: totals[name]})
	}

	return result
}

// dayKeyLayout はセッション作成日時をサーバーのローカルタイムゾーンの暦日に丸めるための書式。
const dayKeyLayout = "2006-01-02"

// DayTotal は1暦日のユーザーごとの累計プレイ時間を表す。
// JSONでは {"date": "...", "<nickname>": minutes, ...} の形にフラット化される。
// その日にセッションを持たないユーザーのキーは出力されない（ゼロ埋めしない）。
type DayTotal struct {
	Date    string
	Minutes map[string]int

	userOrder []string
}

// MarshalJSON はdateキーの後にユーザーのキーを初出順で並べたオブジェクトを出力する。
func (d DayTotal) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"date":`)
	date, err := json.Marshal(d.Date)
	if err != nil {
		return nil, err
	}
	buf.Write(date)
	for _, user := range d.userOrder {
		buf.WriteByte(',')
		key, err := json.Marshal(user)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(d.Minutes[user])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ComputePerUserPerDayTotals は全セッションを作成日（サーバーローカルの暦日）と
// ユーザーで二重にグループ化して累計する。日付もユーザーも初出順を維持する。
func ComputePerUserPerDayTotals(sessions []model.SessionWithNames) []DayTotal {
	var dayOrder []string
	days := make(map[string]*DayTotal)

	for _, session := range sessions {
		key := session.CreatedAt.Local().Format(dayKeyLayout)
		day, ok := days[key]
		if !ok {
			day = &DayTotal{Date: key, Minutes: make(map[string]int)}
			days[key] = day
			dayOrder = append(dayOrder, key)
		}
		if _, ok := day.Minutes[session.Nickname]; !ok {
			day.userOrder = append(day.userOrder, session.Nickname)
		}
		day.Minutes[session.Nickname] += session.DurationSeconds
	}

	result := make([]DayTotal, 0, len(dayOrder))
	for _, key := range dayOrder {
		result = append(result, *days[key])
	}

	return result
}
