// Package upload はプロフィール画像のファイルアップロードを提供する。
package upload

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hitoshi/gamelog/internal/model"
)

// allowedExtensions は受け付ける画像の拡張子。
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Result は保存されたファイルの情報。
type Result struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Service はアップロードファイルの検証と保存を行う。
// 保存先ディレクトリは起動時に作成される。
type Service struct {
	dir string
}

// NewService はServiceの新しいインスタンスを生成し、保存先ディレクトリを作成する。
func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Service{dir: dir}, nil
}

// Save はアップロードされたファイルを検証し、衝突しないファイル名で保存する。
// 拡張子が許可リストにない場合はINVALID_FILE_TYPEを返す。
func (s *Service) Save(originalName string, r io.Reader) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return nil, model.NewInvalidFileTypeError(ext)
	}

	filename := uuid.NewString() + ext
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		// 書き込み途中のファイルは残さない
		os.Remove(path)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	slog.Info("file uploaded",
		slog.String("filename", filename),
		slog.Int64("size_bytes", written),
	)

	return &Result{
		Filename: filename,
		URL:      "/uploads/" + filename,
	}, nil
}

// Dir は保存先ディレクトリを返す。静的配信のルート設定に使用する。
func (s *Service) Dir() string {
	return s.dir
}
