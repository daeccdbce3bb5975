package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/hitoshi/gamelog/internal/model"
	"github.com/hitoshi/gamelog/internal/upload"
)

// UploadServiceInterface はアップロードハンドラーが必要とするサービスインターフェース。
type UploadServiceInterface interface {
	// Save はアップロードされたファイルを検証し保存する。
	Save(originalName string, r io.Reader) (*upload.Result, error)
}

// UploadHandler はプロフィール画像アップロードのHTTPハンドラー。
type UploadHandler struct {
	service UploadServiceInterface
	maxSize int64
}

// NewUploadHandler はUploadHandlerを生成する。
func NewUploadHandler(service UploadServiceInterface, maxSize int64) *UploadHandler {
	return &UploadHandler{
		service: service,
		maxSize: maxSize,
	}
}

// UploadProfilePicture はプロフィール画像を受け取り保存する。
// POST /api/upload/profile-picture
// multipartフィールド名はprofilePicture。サイズ上限を超えるリクエストは拒否する。
func (h *UploadHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeAPIErrorResponse(w, http.StatusRequestEntityTooLarge, &model.APIError{
				Code:     "FILE_TOO_LARGE",
				Message:  "ファイルサイズが上限を超えています。",
				Category: "validation",
				Action:   "5MB以下のファイルをアップロードしてください。",
			})
			return
		}
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewNoFileUploadedError())
		return
	}

	file, header, err := r.FormFile("profilePicture")
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewNoFileUploadedError())
		return
	}
	defer file.Close()

	result, err := h.service.Save(header.Filename, file)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
