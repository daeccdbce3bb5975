package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hitoshi/gamelog/internal/config"
	"github.com/hitoshi/gamelog/internal/database"
)

// seedUser はデモデータ投入用のユーザー定義。
type seedUser struct {
	Email          string
	FirstName      string
	LastName       string
	Nickname       string
	ProfilePicture string
}

// seedSession はデモデータ投入用のプレイセッション定義。
// UserIndex / GameIndex はそれぞれ seedUsers / seedGameIDs のインデックス。
type seedSession struct {
	UserIndex       int
	GameIndex       int
	DurationSeconds int
}

// seedGameIDs はマイグレーションで投入済みのゲームの固定UUID。
// 000002_seed_games マイグレーションと一致させること。
var seedGameIDs = []string{
	"9b1c6a0e-0f10-4f0e-8a4e-1a2b3c4d5e01", // Snowball Showdown
	"9b1c6a0e-0f10-4f0e-8a4e-1a2b3c4d5e02", // Bear Panic
	"9b1c6a0e-0f10-4f0e-8a4e-1a2b3c4d5e03", // Meteor Mayhem
	"9b1c6a0e-0f10-4f0e-8a4e-1a2b3c4d5e04", // Tarzan Rumble
}

var seedUsers = []seedUser{
	{Email: "john.doe@example.com", FirstName: "John", LastName: "Doe", Nickname: "johndoe", ProfilePicture: "👤"},
	{Email: "jane.smith@example.com", FirstName: "Jane", LastName: "Smith", Nickname: "janesmith", ProfilePicture: "🦊"},
	{Email: "test.test@example.com", FirstName: "test", LastName: "test", Nickname: "testtest", ProfilePicture: "🐻"},
	{Email: "user.name@example.com", FirstName: "name", LastName: "lastname", Nickname: "namelastname", ProfilePicture: "🦁"},
}

var seedSessions = []seedSession{
	{UserIndex: 0, GameIndex: 0, DurationSeconds: 2400},
	{UserIndex: 0, GameIndex: 1, DurationSeconds: 3180},
	{UserIndex: 0, GameIndex: 2, DurationSeconds: 1560},
	{UserIndex: 1, GameIndex: 0, DurationSeconds: 1800},
	{UserIndex: 1, GameIndex: 3, DurationSeconds: 2700},
	{UserIndex: 2, GameIndex: 2, DurationSeconds: 3600},
	{UserIndex: 2, GameIndex: 1, DurationSeconds: 1200},
	{UserIndex: 3, GameIndex: 3, DurationSeconds: 2100},
	{UserIndex: 3, GameIndex: 0, DurationSeconds: 1500},
}

// runSeed はデモデータをデータベースに投入する。
// 既存のユーザーとプレイセッションは削除してから投入するため、
// 何度実行しても同じ状態になる。ゲームはマイグレーションで投入済み。
func runSeed(cfg *config.Config) error {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM play_sessions`); err != nil {
		return fmt.Errorf("failed to clear play sessions: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	userIDs := make([]string, len(seedUsers))
	for i, u := range seedUsers {
		userIDs[i] = uuid.NewString()
		_, err := tx.Exec(`
			INSERT INTO users (id, email, first_name, last_name, nickname, profile_picture, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		`, userIDs[i], u.Email, u.FirstName, u.LastName, u.Nickname, u.ProfilePicture)
		if err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.Email, err)
		}
	}

	for _, s := range seedSessions {
		_, err := tx.Exec(`
			INSERT INTO play_sessions (id, user_id, game_id, duration_seconds, created_at)
			VALUES ($1, $2, $3, $4, NOW())
		`, uuid.NewString(), userIDs[s.UserIndex], seedGameIDs[s.GameIndex], s.DurationSeconds)
		if err != nil {
			return fmt.Errorf("failed to insert play session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}

	slog.Info("seed data inserted",
		slog.Int("users", len(seedUsers)),
		slog.Int("sessions", len(seedSessions)),
	)
	return nil
}
