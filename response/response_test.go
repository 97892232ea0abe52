package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betenlace/errors"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		mess   string
		code   string
	}{
		{"lỗi schema", errors.NewAppError(errors.ErrCodeSchema, "thiếu cột Deposits", nil), http.StatusBadRequest, "thiếu cột Deposits", "SCHEMA_ERROR"},
		{"lỗi DB ẩn chi tiết", errors.NewAppError(errors.ErrCodeDBError, "lỗi ghi", fmt.Errorf("pq: deadlock")), http.StatusInternalServerError, "Lỗi server", "DB_ERROR"},
		{"thiếu tỷ giá", errors.NewAppError(errors.ErrCodeFxMissing, "không có fx_partner", nil), http.StatusInternalServerError, "không có fx_partner", "FX_MISSING"},
		{"lỗi thường", fmt.Errorf("boom"), http.StatusInternalServerError, "Lỗi server", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			FromError(c, tt.err)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.mess, body.Mess)
			assert.Equal(t, tt.code, body.ErrorCode)
			assert.Equal(t, 0, body.Code)
		})
	}
}
