package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"betenlace/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code      int         `json:"code"`
	Mess      string      `json:"mess"`
	ErrorCode string      `json:"errorCode,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Không có quyền truy cập",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError trả lỗi theo AppError: HTTP status theo mã lỗi, kèm errorCode
func FromError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}
	mess := appErr.Message
	if appErr.Code == errors.ErrCodeDBError {
		mess = "Lỗi server"
	}
	c.JSON(status, Response{
		Code:      0,
		Mess:      mess,
		ErrorCode: string(appErr.Code),
	})
}
