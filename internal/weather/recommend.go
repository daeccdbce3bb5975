// Package weather は天気情報の取得とゲーム推薦を提供する。
package weather

// Recommendation は天気コードから導かれる表示情報と推薦ゲーム。
type Recommendation struct {
	Condition string
	Icon      string
	Game      string
}

// RecommendationForCode はWMO天気コードを推薦に変換する。
// どのコードに対しても必ず値を返し、未分類のコードはClear Sky扱いとなる。
func RecommendationForCode(code int) Recommendation {
	switch {
	case code >= 2 && code <= 3:
		return Recommendation{Condition: "Cloudy", Icon: "☁️", Game: "Bear Panic"}
	case code >= 51 && code <= 67:
		return Recommendation{Condition: "Rain", Icon: "🌧️", Game: "Meteor Mayhem"}
	case code >= 71 && code <= 77:
		return Recommendation{Condition: "Snow", Icon: "❄️", Game: "Tarzan Rumble"}
	case code >= 95 && code <= 99:
		return Recommendation{Condition: "Thunderstorm", Icon: "⛈️", Game: "Bear Panic"}
	default:
		return Recommendation{Condition: "Clear Sky", Icon: "☀️", Game: "Snowball Showdown"}
	}
}
