package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 身份提供方会话令牌中携带的信息
// Subject 为外部身份唯一标识，与 users.subject 对应
type SessionClaims struct {
	Nickname string `json:"nickname,omitempty"`
	jwt.RegisteredClaims
}
