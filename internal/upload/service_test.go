package upload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hitoshi/gamelog/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestNewService_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	svc, err := NewService(dir)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	info, err := os.Stat(svc.Dir())
	if err != nil {
		t.Fatalf("upload directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestService_Save_Success(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Save("avatar.png", strings.NewReader("fake png bytes"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasSuffix(result.Filename, ".png") {
		t.Errorf("Filename = %q, want .png suffix", result.Filename)
	}
	if result.URL != "/uploads/"+result.Filename {
		t.Errorf("URL = %q, want %q", result.URL, "/uploads/"+result.Filename)
	}

	data, err := os.ReadFile(filepath.Join(svc.Dir(), result.Filename))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("stored content = %q, want %q", data, "fake png bytes")
	}
}

func TestService_Save_UppercaseExtension_Normalized(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Save("AVATAR.JPG", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasSuffix(result.Filename, ".jpg") {
		t.Errorf("Filename = %q, want lowercased .jpg suffix", result.Filename)
	}
}

func TestService_Save_GeneratesUniqueFilenames(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Save("a.gif", strings.NewReader("1"))
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second, err := svc.Save("a.gif", strings.NewReader("2"))
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if first.Filename == second.Filename {
		t.Errorf("expected unique filenames, both were %q", first.Filename)
	}
}

func TestService_Save_DisallowedExtension(t *testing.T) {
	svc := newTestService(t)

	for _, name := range []string{"script.exe", "page.html", "noext", "archive.tar.gz"} {
		_, err := svc.Save(name, strings.NewReader("x"))

		var apiErr *model.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("%s: expected APIError, got %v", name, err)
		}
		if apiErr.Code != model.ErrCodeInvalidFileType {
			t.Errorf("%s: Code = %q, want %q", name, apiErr.Code, model.ErrCodeInvalidFileType)
		}
	}
}

func TestService_Save_WebpAllowed(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Save("photo.webp", strings.NewReader("x")); err != nil {
		t.Fatalf("expected .webp to be allowed, got %v", err)
	}
}
