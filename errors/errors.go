package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Ingest errors
	ErrCodeSchema             ErrorCode = "SCHEMA_ERROR"
	ErrCodeDate               ErrorCode = "DATE_ERROR"
	ErrCodeFxMissing          ErrorCode = "FX_MISSING"
	ErrCodeCampaignNotFound   ErrorCode = "CAMPAIGN_NOT_FOUND"
	ErrCodeCampaignNotAllowed ErrorCode = "CAMPAIGN_NOT_ALLOWED"
	ErrCodeFeedCPACount       ErrorCode = "FEED_CPA_COUNT"
	ErrCodeIngestorNotFound   ErrorCode = "INGESTOR_NOT_FOUND"
	ErrCodeLockTimeout        ErrorCode = "LOCK_TIMEOUT"
)

// ErrMissingRequired dùng khi field bắt buộc bị bỏ trống
var ErrMissingRequired = errors.New("thiếu giá trị bắt buộc")

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
	return GetAppError(err) != nil
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra mã lỗi của err
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// HTTPStatus trả về HTTP status tương ứng với lỗi
func HTTPStatus(err error) int {
	appErr := GetAppError(err)
	if appErr == nil {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case ErrCodeSchema, ErrCodeDate, ErrCodeCampaignNotFound, ErrCodeCampaignNotAllowed,
		ErrCodeFeedCPACount, ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case ErrCodeIngestorNotFound, ErrCodeDBNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized, ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case ErrCodeLockTimeout:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
