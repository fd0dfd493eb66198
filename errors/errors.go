package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodePastCheckIn      ErrorCode = "PAST_CHECK_IN"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomUnavailable  ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeBookingNotFound  ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeCodeExhausted    ErrorCode = "CODE_GENERATION_EXHAUSTED"
	ErrCodeLockTimeout      ErrorCode = "LOCK_TIMEOUT"

	// Hospital errors
	ErrCodeHospitalNotFound ErrorCode = "HOSPITAL_NOT_FOUND"
	ErrCodeHospitalExists   ErrorCode = "HOSPITAL_EXISTS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có mang ErrorCode cho trước không
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrDuplicateCode   = errors.New("confirmation code already exists")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")
)
