package model

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIError_Error_IncludesCodeAndMessage(t *testing.T) {
	err := &APIError{Code: "TEST_CODE", Message: "テストメッセージ"}

	got := err.Error()
	if !strings.Contains(got, "TEST_CODE") {
		t.Errorf("Error() = %q, want it to contain %q", got, "TEST_CODE")
	}
	if !strings.Contains(got, "テストメッセージ") {
		t.Errorf("Error() = %q, want it to contain the message", got)
	}
}

func TestNewValidationError_CarriesFieldDetails(t *testing.T) {
	fields := []FieldError{
		{Field: "email", Message: "Invalid email format"},
		{Field: "nickname", Message: "Nickname is required"},
	}
	err := NewValidationError(fields)

	if err.Code != ErrCodeValidationFailed {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeValidationFailed)
	}
	if err.Category != "validation" {
		t.Errorf("Category = %q, want %q", err.Category, "validation")
	}
	if len(err.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want %d", len(err.Fields), 2)
	}
	if err.Fields[0].Field != "email" {
		t.Errorf("Fields[0].Field = %q, want %q", err.Fields[0].Field, "email")
	}
}

func TestNewUserNotFoundError_IncludesID(t *testing.T) {
	err := NewUserNotFoundError("user-42")

	if err.Code != ErrCodeUserNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUserNotFound)
	}
	if err.Category != "not_found" {
		t.Errorf("Category = %q, want %q", err.Category, "not_found")
	}
	if !strings.Contains(err.Message, "user-42") {
		t.Errorf("Message = %q, want it to contain %q", err.Message, "user-42")
	}
}

func TestConflictErrors_HaveConflictCategory(t *testing.T) {
	for _, err := range []*APIError{NewEmailAlreadyExistsError(), NewNicknameAlreadyTakenError()} {
		if err.Category != "conflict" {
			t.Errorf("%s: Category = %q, want %q", err.Code, err.Category, "conflict")
		}
	}
}

func TestNewWeatherUpstreamError_HidesUpstreamDetail(t *testing.T) {
	err := NewWeatherUpstreamError()

	if err.Category != "upstream" {
		t.Errorf("Category = %q, want %q", err.Category, "upstream")
	}
	// 上流の内部情報を含まない一般的なメッセージであること
	if strings.Contains(err.Message, "open-meteo") {
		t.Errorf("Message should not leak upstream detail: %q", err.Message)
	}
}

func TestAPIError_WorksWithErrorsAs(t *testing.T) {
	var wrapped error = NewGameNotFoundError("game-1")

	var apiErr *APIError
	if !errors.As(wrapped, &apiErr) {
		t.Fatal("expected errors.As to match *APIError")
	}
	if apiErr.Code != ErrCodeGameNotFound {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrCodeGameNotFound)
	}
}
