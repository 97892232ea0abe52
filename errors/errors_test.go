package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewAppError(ErrCodeDBError, "lỗi truy vấn", cause)

	assert.Equal(t, "[DB_ERROR] lỗi truy vấn: connection refused", err.Error())
	assert.Equal(t, "[DATE_ERROR] sai ngày", NewAppError(ErrCodeDate, "sai ngày", nil).Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("ingest: %w", err)
	assert.True(t, IsAppError(wrapped))
	assert.True(t, HasCode(wrapped, ErrCodeDBError))
	assert.False(t, HasCode(wrapped, ErrCodeSchema))
	assert.False(t, IsAppError(cause))
}

func TestHTTPStatus(t *testing.T) {
	tests := map[ErrorCode]int{
		ErrCodeSchema:             http.StatusBadRequest,
		ErrCodeDate:               http.StatusBadRequest,
		ErrCodeFeedCPACount:       http.StatusBadRequest,
		ErrCodeCampaignNotAllowed: http.StatusBadRequest,
		ErrCodeIngestorNotFound:   http.StatusNotFound,
		ErrCodeInvalidToken:       http.StatusUnauthorized,
		ErrCodeLockTimeout:        http.StatusConflict,
		ErrCodeFxMissing:          http.StatusInternalServerError,
		ErrCodeDBError:            http.StatusInternalServerError,
	}
	for code, status := range tests {
		assert.Equal(t, status, HTTPStatus(NewAppError(code, "x", nil)), code)
	}
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("plain")))
}
