// Package user はユーザー管理のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/gamelog/internal/model"
	"github.com/hitoshi/gamelog/internal/repository"
	"github.com/hitoshi/gamelog/internal/stats"
)

// Service はユーザー管理のサービス層。
// バリデーション、重複チェック、プロフィール統計の組み立てを提供する。
type Service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.PlaySessionRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository, sessionRepo repository.PlaySessionRepository) *Service {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Profile はユーザー情報とプレイ統計を結合したプロフィール。
type Profile struct {
	User       *model.User
	Statistics stats.UserStatistics
}

// CreateInput はユーザー作成の入力。
type CreateInput struct {
	Email          string
	FirstName      string
	LastName       string
	Nickname       string
	ProfilePicture string
}

// UpdateInput はユーザー部分更新の入力。nilのフィールドは変更しない。
type UpdateInput struct {
	Email          *string
	FirstName      *string
	LastName       *string
	Nickname       *string
	ProfilePicture *string
}

// List は全ユーザーを返す。
func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetProfile は指定ユーザーのプロフィールをプレイ統計付きで返す。
// ユーザーが存在しない場合はUSER_NOT_FOUNDを返す。
func (s *Service) GetProfile(ctx context.Context, id string) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError(id)
	}

	sessions, err := s.sessionRepo.ListByUserIDWithGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for user: %w", err)
	}

	return &Profile{
		User:       user,
		Statistics: stats.ComputeUserStatistics(sessions),
	}, nil
}

// Create は新規ユーザーを作成する。
// バリデーション失敗はフィールド単位の詳細付きで、メールアドレス・ニックネームの
// 重複はコンフリクトとして返す。
func (s *Service) Create(ctx context.Context, input CreateInput) (*model.User, error) {
	input.Email = normalizeEmail(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Nickname = strings.TrimSpace(input.Nickname)

	var fields []model.FieldError
	if fe := validateEmail(input.Email); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := validateName("firstName", input.FirstName, "First name"); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := validateName("lastName", input.LastName, "Last name"); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := validateNickname(input.Nickname); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := validateProfilePicture(input.ProfilePicture); fe != nil {
		fields = append(fields, *fe)
	}
	if len(fields) > 0 {
		return nil, model.NewValidationError(fields)
	}

	existing, err := s.userRepo.FindByEmailOrNickname(ctx, input.Email, input.Nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicates: %w", err)
	}
	if existing != nil {
		if existing.Email == input.Email {
			return nil, model.NewEmailAlreadyExistsError()
		}
		return nil, model.NewNicknameAlreadyTakenError()
	}

	now := time.Now()
	user := &model.User{
		ID:             uuid.NewString(),
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Nickname:       input.Nickname,
		ProfilePicture: input.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created",
		slog.String("user_id", user.ID),
		slog.String("nickname", user.Nickname),
	)

	return user, nil
}

// Update は指定ユーザーを部分更新する。
// 指定されたフィールドのみ検証し、ユーザーが存在しない場合はUSER_NOT_FOUNDを返す。
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*model.User, error) {
	var fields []model.FieldError

	if input.Email != nil {
		normalized := normalizeEmail(*input.Email)
		input.Email = &normalized
		if fe := validateEmail(normalized); fe != nil {
			fields = append(fields, *fe)
		}
	}
	if input.FirstName != nil {
		trimmed := strings.TrimSpace(*input.FirstName)
		input.FirstName = &trimmed
		if fe := validateName("firstName", trimmed, "First name"); fe != nil {
			fields = append(fields, *fe)
		}
	}
	if input.LastName != nil {
		trimmed := strings.TrimSpace(*input.LastName)
		input.LastName = &trimmed
		if fe := validateName("lastName", trimmed, "Last name"); fe != nil {
			fields = append(fields, *fe)
		}
	}
	if input.Nickname != nil {
		trimmed := strings.TrimSpace(*input.Nickname)
		input.Nickname = &trimmed
		if fe := validateNickname(trimmed); fe != nil {
			fields = append(fields, *fe)
		}
	}
	if input.ProfilePicture != nil {
		if fe := validateProfilePicture(*input.ProfilePicture); fe != nil {
			fields = append(fields, *fe)
		}
	}
	if len(fields) > 0 {
		return nil, model.NewValidationError(fields)
	}

	// メールアドレス・ニックネームの変更は他ユーザーとの重複を禁止する
	if input.Email != nil || input.Nickname != nil {
		email := ""
		if input.Email != nil {
			email = *input.Email
		}
		nickname := ""
		if input.Nickname != nil {
			nickname = *input.Nickname
		}
		existing, err := s.userRepo.FindByEmailOrNickname(ctx, email, nickname)
		if err != nil {
			return nil, fmt.Errorf("failed to check duplicates: %w", err)
		}
		if existing != nil && existing.ID != id {
			if input.Email != nil && existing.Email == email {
				return nil, model.NewEmailAlreadyExistsError()
			}
			return nil, model.NewNicknameAlreadyTakenError()
		}
	}

	updated, err := s.userRepo.Update(ctx, id, &model.UserUpdate{
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Nickname:       input.Nickname,
		ProfilePicture: input.ProfilePicture,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if updated == nil {
		return nil, model.NewUserNotFoundError(id)
	}

	slog.Info("user updated", slog.String("user_id", id))

	return updated, nil
}

// Delete は指定ユーザーを削除する。関連するプレイセッションはCASCADE削除される。
// ユーザーが存在しない場合はUSER_NOT_FOUNDを返す。
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return model.NewUserNotFoundError(id)
	}

	slog.Info("user deleted", slog.String("user_id", id))

	return nil
}
