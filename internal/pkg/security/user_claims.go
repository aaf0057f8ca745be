package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Orion"
	JWTExpirationTime        = time.Hour * 24 * 7
)

// UserClaims Token 中携带的业务信息
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
