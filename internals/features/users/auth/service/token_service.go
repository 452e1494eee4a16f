// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"tanyaku_backend/internals/configs"
)

// IssueAccessToken membuat access token HS256 dengan claim user_id.
// Secret diambil dari configs (dimuat saat startup, tidak pernah
// hardcoded literal).
func IssueAccessToken(userID uint) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT secret belum dikonfigurasi")
	}

	ttl := configs.AccessTokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
