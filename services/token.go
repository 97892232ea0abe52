package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dgrijalva/jwt-go"

	"betenlace/errors"
)

var (
	secretMu    sync.RWMutex
	tokenSecret []byte
)

// SetTokenSecret đặt secret HMAC dùng để verify token
func SetTokenSecret(secret string) {
	secretMu.Lock()
	defer secretMu.Unlock()
	tokenSecret = []byte(secret)
}

func currentSecret() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return tokenSecret
}

// GetUserIDFromToken verify chữ ký rồi lấy userID và role từ claim "userinfo"
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	secret := currentSecret()
	if len(secret) == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeUnauthorized, "Chưa cấu hình JWT_SECRET", nil)
	}

	token, err := jwt.Parse(strings.TrimSpace(tokenString), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không hợp lệ: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	claimsMap, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", nil)
	}

	// Trích xuất userID và role từ claims
	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy role trong token", nil)
	}

	return uint(userID), int(role), nil
}

// NewToken ký token HMAC với claim "userinfo" (dùng cho công cụ nội bộ và test)
func NewToken(userID uint, role int) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": userID,
			"role":   role,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(currentSecret())
}
