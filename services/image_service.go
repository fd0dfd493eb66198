package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"mime/multipart"
	"strings"

	"hillbook/config"
	"hillbook/errors"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadBase64Image decode ảnh base64 (có thể kèm data URI prefix) rồi đẩy
// lên Cloudinary, trả về secure URL
func UploadBase64Image(ctx context.Context, data string, folder string) (string, error) {
	// cắt prefix "data:image/png;base64," nếu client gửi dạng data URI
	if idx := strings.Index(data, ","); idx != -1 && strings.Contains(data[:idx], "base64") {
		data = data[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidFormat, "Ảnh base64 không hợp lệ", err)
	}

	resp, err := config.Cloudinary.Upload.Upload(ctx, bytes.NewReader(raw), uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// UploadMultipartImage đẩy file multipart lên Cloudinary, trả về secure URL
func UploadMultipartImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
